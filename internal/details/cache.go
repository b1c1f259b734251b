// Package details resolves and memoizes full package details.
package details

import (
	gocache "github.com/patrickmn/go-cache"
	"github.com/ralt/pkgseek/internal/models"
	"github.com/sirupsen/logrus"
)

// Cache memoizes details by the identity string the caller used. Entries never
// expire and are never evicted. It is safe for concurrent use.
type Cache struct {
	cache *gocache.Cache
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get returns a copy of the details stored under identity
func (c *Cache) Get(identity string) (*models.Details, bool) {
	value, found := c.cache.Get(identity)
	if !found {
		return nil, false
	}

	d, ok := value.(*models.Details)
	if !ok {
		logrus.Errorf("Unexpected cache value type for %s: %T", identity, value)
		return nil, false
	}

	logrus.Debugf("Details cache hit for %s", identity)
	return d.Clone(), true
}

// Set stores a copy of d under identity, replacing any earlier value
func (c *Cache) Set(identity string, d *models.Details) {
	c.cache.Set(identity, d.Clone(), gocache.NoExpiration)
}

// Len returns the number of cached identities
func (c *Cache) Len() int {
	return c.cache.ItemCount()
}
