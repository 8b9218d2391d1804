package usecase

import (
	"context"

	"lunaloops-storefront/internal/domain"
	"lunaloops-storefront/internal/storefront"
	"lunaloops-storefront/pkg/logger"
	"lunaloops-storefront/pkg/utils"
)

type SessionUsecase struct {
	repo    SessionRepository
	pricing domain.PricingConfig
}

// NewSessionUsecase injects one pricing config into every session it creates.
func NewSessionUsecase(repo SessionRepository, cfg domain.PricingConfig) *SessionUsecase {
	return &SessionUsecase{repo: repo, pricing: cfg}
}

func (u *SessionUsecase) StartSession(ctx context.Context) (*storefront.Session, error) {
	s := storefront.NewSession(utils.GenerateUUID(), u.pricing)
	if err := u.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	logger.WithContext(ctx).Info().Str("session_id", s.ID()).Msg("Session started")
	return s, nil
}

func (u *SessionUsecase) GetSession(ctx context.Context, id string) (*storefront.Session, error) {
	return u.repo.Get(ctx, id)
}

func (u *SessionUsecase) EndSession(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.WithContext(ctx).Info().Str("session_id", id).Msg("Session ended")
	return nil
}
