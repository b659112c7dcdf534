package cache

import (
	"context"
	"errors"
	"time"

	pkgcache "NewsRank/pkg/cache"
)

// ServiceBytesCache adapts a pkg/cache Service to the BytesCache API.
// Values are stored as strings so both the memory and Redis layers round-trip
// them unchanged.
type ServiceBytesCache struct {
	svc pkgcache.Service
}

func NewServiceBytesCache(svc pkgcache.Service) *ServiceBytesCache {
	return &ServiceBytesCache{svc: svc}
}

func (s *ServiceBytesCache) GetBytes(key string) ([]byte, bool, error) {
	var raw string
	err := s.svc.Get(context.Background(), key, &raw)
	if err != nil {
		if errors.Is(err, pkgcache.ErrCacheMiss) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(raw), true, nil
}

func (s *ServiceBytesCache) SetBytes(key string, value []byte, ttl time.Duration) error {
	return s.svc.Set(context.Background(), key, string(value), ttl)
}
