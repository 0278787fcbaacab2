package storage

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"wep_bot/session"
)

// MemorySessionStore keeps sessions in process memory. Sessions idle for
// longer than the TTL are evicted; a TTL <= 0 keeps them forever.
type MemorySessionStore struct {
	cache *cache.Cache
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	expiration, cleanup := cache.NoExpiration, time.Duration(0)
	if ttl > 0 {
		expiration = ttl
		cleanup = ttl / 6
		if cleanup < time.Second {
			cleanup = time.Second
		}
	}
	return &MemorySessionStore{cache: cache.New(expiration, cleanup)}
}

func (s *MemorySessionStore) Get(_ context.Context, userID string) (session.Session, bool, error) {
	if x, found := s.cache.Get(userID); found {
		return x.(session.Session), true, nil
	}
	return session.Session{}, false, nil
}

func (s *MemorySessionStore) Save(_ context.Context, sess session.Session) error {
	s.cache.Set(sess.UserID, sess, cache.DefaultExpiration)
	return nil
}

func (s *MemorySessionStore) Count(context.Context) (int, error) {
	return s.cache.ItemCount(), nil
}
