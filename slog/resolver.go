package slog

import (
	"log/slog"

	"github.com/fwojciec/embedkit"
)

// Ensure LoggingResolver implements embedkit.URLResolver.
var _ embedkit.URLResolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a URLResolver and logs references that resolution
// rewrote at debug level.
type LoggingResolver struct {
	next   embedkit.URLResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next embedkit.URLResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver.
func (r *LoggingResolver) Resolve(ref string) string {
	resolved := r.next.Resolve(ref)
	if resolved != ref {
		r.logger.Debug("resolve", "ref", ref, "url", resolved)
	}
	return resolved
}
