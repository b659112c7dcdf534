package cache

import "time"

// BytesCache stores raw bytes with a TTL. Feed responses and profiles are
// cached as pre-marshaled JSON, so byte slices are the only value type.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}
