package logs

// Span identifies one logical unit of work, e.g. one file scan. It is
// carried in the context and attached to every log record emitted under
// it.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
