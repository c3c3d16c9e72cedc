package configs

// Configurable marks a value type as settable from config files.
// ConfigExpr names it in logs and dumps.
type Configurable interface {
	ConfigExpr() string
}
