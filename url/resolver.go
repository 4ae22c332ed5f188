// Package url implements embedkit.URLResolver with net/url.
package url

import (
	"net/url"
	"strings"

	"github.com/fwojciec/embedkit"
)

// Ensure Resolver implements embedkit.URLResolver at compile time.
var _ embedkit.URLResolver = (*Resolver)(nil)

// Resolver resolves references against a fixed absolute base URL.
type Resolver struct {
	base *url.URL
}

// NewResolver creates a Resolver for base.
// Returns EINVALID if base cannot be parsed or is not absolute.
func NewResolver(base string) (*Resolver, error) {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return nil, embedkit.Errorf(embedkit.EINVALID, "invalid base URL: %v", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, embedkit.Errorf(embedkit.EINVALID, "base URL must be absolute: %q", base)
	}
	return &Resolver{base: u}, nil
}

// Base returns the base URL as a string.
func (r *Resolver) Base() string {
	return r.base.String()
}

// Resolve returns ref resolved against the base URL.
// References that cannot be parsed are returned unchanged.
func (r *Resolver) Resolve(ref string) string {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return ref
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return ref
	}
	return r.base.ResolveReference(u).String()
}
