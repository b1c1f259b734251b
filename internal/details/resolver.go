package details

import (
	"context"

	"github.com/ralt/pkgseek/internal/models"
	"github.com/sirupsen/logrus"
)

// Provider resolves the details of a bare package name for one source family
type Provider interface {
	Details(ctx context.Context, name string) (*models.Details, bool)
}

// Resolver is a read-through cache in front of the per-family providers
type Resolver struct {
	cache     *Cache
	providers map[models.Family]Provider
}

// Option configures a Resolver
type Option func(*Resolver)

// WithProvider registers p for family
func WithProvider(family models.Family, p Provider) Option {
	return func(r *Resolver) {
		r.providers[family] = p
	}
}

// NewResolver creates a Resolver over cache. Several resolvers may share a cache.
func NewResolver(cache *Cache, opts ...Option) *Resolver {
	r := &Resolver{
		cache:     cache,
		providers: make(map[models.Family]Provider),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the details of identity, as published by the source family of
// providerTag. Successful lookups are cached under identity exactly as given;
// failed ones are retried on the next call.
func (r *Resolver) Resolve(ctx context.Context, identity, providerTag string) (*models.Details, bool) {
	if d, ok := r.cache.Get(identity); ok {
		return d, true
	}

	provider := models.ParseProvider(providerTag)
	p, ok := r.providers[provider.Family]
	if !ok {
		logrus.Debugf("No details provider for %q", providerTag)
		return nil, false
	}

	d, ok := p.Details(ctx, models.StripRepo(identity))
	if !ok {
		return nil, false
	}

	// Concurrent misses for the same identity may each reach the provider; the
	// last write wins and every value is equivalent.
	r.cache.Set(identity, d)
	return d.Clone(), true
}
