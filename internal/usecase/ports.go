package usecase

import (
	"context"

	"lunaloops-storefront/internal/storefront"
)

type SessionRepository interface {
	Save(ctx context.Context, s *storefront.Session) error
	Get(ctx context.Context, id string) (*storefront.Session, error)
	Delete(ctx context.Context, id string) error
}
