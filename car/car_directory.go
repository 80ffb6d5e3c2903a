package car

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedDirectory wraps a Directory with a short-lived in-memory cache. Car
// lookups happen on every booking operation while listings change rarely, so
// a brief staleness window is acceptable.
type CachedDirectory struct {
	next  Directory
	cache *cache.Cache
}

func NewCachedDirectory(next Directory) *CachedDirectory {
	return &CachedDirectory{
		next:  next,
		cache: cache.New(1*time.Minute, 5*time.Minute),
	}
}

func (d *CachedDirectory) GetByID(ctx context.Context, id string) (Car, error) {
	if cached, found := d.cache.Get(id); found {
		return cached.(Car), nil
	}

	c, err := d.next.GetByID(ctx, id)

	if err != nil {
		return Car{}, err
	}

	d.cache.Set(id, c, cache.DefaultExpiration)

	return c, nil
}

func (d *CachedDirectory) IsOwnedBy(ctx context.Context, carID, userID string) (bool, error) {
	c, err := d.GetByID(ctx, carID)

	if err != nil {
		return false, err
	}

	return c.OwnerID == userID, nil
}
