package vunkplay

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"

	"github.com/vunk-lang/vunk/logs"
	"github.com/vunk-lang/vunk/vunkconfigs"
	"golang.org/x/net/websocket"
)

//go:embed index.html
var indexPage []byte

type Handler http.Handler

func (Module) Handler(
	logger logs.Logger,
	keepComments vunkconfigs.KeepComments,
) Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexPage)
	})

	mux.HandleFunc("POST /tokenize", func(w http.ResponseWriter, r *http.Request) {
		content, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		result := scanSource("playground", string(content), bool(keepComments))
		logger.InfoContext(r.Context(), "tokenize",
			"bytes", len(content),
			"tokens", len(result.Tokens),
			"diagnostics", len(result.Diagnostics),
		)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	})

	// Each websocket message is the full buffer; we re-scan and reply
	// with the scan result, so editors get live classification.
	mux.Handle("/live", websocket.Handler(func(conn *websocket.Conn) {
		defer conn.Close()
		for {
			var content string
			if err := websocket.Message.Receive(conn, &content); err != nil {
				if !errors.Is(err, io.EOF) {
					logger.Warn("live receive", "error", err)
				}
				return
			}
			result := scanSource("playground", content, bool(keepComments))
			if err := websocket.JSON.Send(conn, result); err != nil {
				logger.Warn("live send", "error", err)
				return
			}
		}
	}))

	return mux
}

type Serve func(ctx context.Context) error

func (Module) Serve(
	addr vunkconfigs.PlayAddr,
	handler Handler,
	logger logs.Logger,
) Serve {
	return func(ctx context.Context) error {
		listener, err := net.Listen("tcp", string(addr))
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		logger.InfoContext(ctx, "playground listening", "addr", listener.Addr().String())

		server := &http.Server{
			Handler: handler,
		}
		go func() {
			<-ctx.Done()
			server.Shutdown(context.Background())
		}()

		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
