package memory

import (
	"context"
	"fmt"

	"lunaloops-storefront/internal/domain"
	"lunaloops-storefront/internal/storefront"
	"lunaloops-storefront/pkg/cache"
)

const sessionKeyPrefix = "session:"

// SessionRepository keeps shopper sessions in a TTL cache. Reading a session
// extends its lifetime, so only idle sessions expire.
type SessionRepository struct {
	cache cache.CacheService
}

func NewSessionRepository(c cache.CacheService) *SessionRepository {
	return &SessionRepository{cache: c}
}

func (r *SessionRepository) Save(ctx context.Context, s *storefront.Session) error {
	r.cache.Set(sessionKeyPrefix+s.ID(), s, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*storefront.Session, error) {
	key := sessionKeyPrefix + id
	val, found := r.cache.Get(key)
	if !found {
		return nil, fmt.Errorf("%w: %q", domain.ErrSessionNotFound, id)
	}

	s, ok := val.(*storefront.Session)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrSessionNotFound, id)
	}

	r.cache.Set(key, s, cache.DefaultExpiration)
	return s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if _, found := r.cache.Get(sessionKeyPrefix + id); !found {
		return fmt.Errorf("%w: %q", domain.ErrSessionNotFound, id)
	}
	r.cache.Delete(sessionKeyPrefix + id)
	return nil
}

func (r *SessionRepository) Count() int {
	return r.cache.Count()
}
