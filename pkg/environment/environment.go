package environment

import (
	"context"
	"log/slog"
	"strings"
)

// Environment represents application environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse normalizes an environment name. Short forms "dev", "stage" and
// "prod" are accepted; anything unrecognized falls back to Development.
func Parse(name string) Environment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

// String returns the environment name.
func (e Environment) String() string {
	return string(e)
}

type contextKey struct{}

// WithContext attaches env to ctx.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx, or "" when absent.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// IsDevelopment reports whether ctx carries the Development environment.
// A context without an environment is not development.
func IsDevelopment(ctx context.Context) bool {
	return FromContext(ctx) == Development
}

// LoggerExtractor reports the context environment under the key "env".
// Its signature matches logger.ContextExtractor.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		env := FromContext(ctx)
		if env == "" {
			return slog.Attr{}, false
		}
		return slog.String("env", string(env)), true
	}
}
