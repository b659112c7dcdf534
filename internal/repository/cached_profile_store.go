package repository

import (
	"context"
	"encoding/json"
	"time"

	"NewsRank/internal/domain/models"
	"NewsRank/internal/domain/repository"
	icache "NewsRank/internal/service/cache"
	pkgcache "NewsRank/pkg/cache"
)

// CachedProfileStore wraps a ProfileStore with a read-through bytes cache.
// Profiles change rarely relative to feed requests, so a short TTL removes
// most of the load on the profile service.
type CachedProfileStore struct {
	inner repository.ProfileStore
	cache icache.BytesCache
	ttl   time.Duration
}

// NewCachedProfileStore creates a caching decorator around inner.
func NewCachedProfileStore(inner repository.ProfileStore, cache icache.BytesCache, ttl time.Duration) repository.ProfileStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedProfileStore{inner: inner, cache: cache, ttl: ttl}
}

func (s *CachedProfileStore) Profile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := pkgcache.GenerateKey("profile", userID)

	if b, ok, err := s.cache.GetBytes(key); err == nil && ok {
		var p models.UserProfile
		if json.Unmarshal(b, &p) == nil {
			return &p, nil
		}
	}

	p, err := s.inner.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(p); err == nil {
		_ = s.cache.SetBytes(key, b, s.ttl) // cache failures never break reads
	}
	return p, nil
}

func (s *CachedProfileStore) Close() error {
	return s.inner.Close()
}
