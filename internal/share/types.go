package share

// Fields carries arbitrary structured key/value pairs attached to a log
// Entry (worker name, component tags, error details).
type Fields map[string]any
