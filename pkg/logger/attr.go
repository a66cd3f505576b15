package logger

import "log/slog"

// Error records err under the key "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records a named occurrence under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Command records the CLI command path under the key "command".
func Command(path string) slog.Attr {
	return slog.String("command", path)
}

// Selector records a rendered CSS selector under the key "selector".
func Selector(text string) slog.Attr {
	return slog.String("selector", text)
}

// Kind records a fragment or prototype kind under the key "kind".
func Kind(name string) slog.Attr {
	return slog.String("kind", name)
}

// Count records a result count under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
