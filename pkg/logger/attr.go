package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Command records the executed command under the key "command".
func Command(name string) slog.Attr {
	return slog.String("command", name)
}

// Input records an input value under the key "input".
func Input(s string) slog.Attr {
	return slog.String("input", s)
}

// Count records the number of processed items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
