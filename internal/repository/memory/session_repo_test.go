package memory

import (
	"context"
	"testing"
	"time"

	"lunaloops-storefront/internal/domain"
	"lunaloops-storefront/internal/infrastructure/cache"
	"lunaloops-storefront/internal/pricing"
	"lunaloops-storefront/internal/storefront"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, id string) *storefront.Session {
	t.Helper()
	cfg, err := pricing.ProfileByName(domain.PricingProfileStandard)
	require.NoError(t, err)
	return storefront.NewSession(id, cfg)
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository(cache.NewMemoryCache(time.Hour, 0))
	ctx := context.Background()

	s := newSession(t, "abc")
	require.NoError(t, repo.Save(ctx, s))
	assert.Equal(t, 1, repo.Count())

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, repo.Delete(ctx, "abc"))
	_, err = repo.Get(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "abc"), domain.ErrSessionNotFound)
}

func TestSessionsAreIsolated(t *testing.T) {
	repo := NewSessionRepository(cache.NewMemoryCache(time.Hour, 0))
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, newSession(t, "a")))
	require.NoError(t, repo.Save(ctx, newSession(t, "b")))

	a, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	a.ToggleWishlist("1")

	b, err := repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.Zero(t, b.WishlistCount())
}

func TestSessionExpires(t *testing.T) {
	repo := NewSessionRepository(cache.NewMemoryCache(20*time.Millisecond, 0))
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, newSession(t, "short")))

	time.Sleep(50 * time.Millisecond)

	_, err := repo.Get(ctx, "short")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
