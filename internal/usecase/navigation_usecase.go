package usecase

import (
	"context"

	"lunaloops-storefront/internal/domain"
	"lunaloops-storefront/internal/storefront"
	"lunaloops-storefront/pkg/logger"
)

type NavigationUsecase struct {
	catalog *CatalogUsecase
}

func NewNavigationUsecase(catalog *CatalogUsecase) *NavigationUsecase {
	return &NavigationUsecase{catalog: catalog}
}

func (u *NavigationUsecase) SetFilter(ctx context.Context, s *storefront.Session, filter domain.Category) error {
	if err := s.SetFilter(filter); err != nil {
		return err
	}
	logger.WithContext(ctx).Debug().Str("filter", string(filter)).Msg("Usecase: SetFilter")
	return nil
}

func (u *NavigationUsecase) SetView(ctx context.Context, s *storefront.Session, view domain.View) error {
	if err := s.SetView(view); err != nil {
		return err
	}
	logger.WithContext(ctx).Debug().Str("view", string(view)).Msg("Usecase: SetView")
	return nil
}

func (u *NavigationUsecase) SelectCategoryAndShop(ctx context.Context, s *storefront.Session, category domain.Category) error {
	if err := s.SelectCategoryAndShop(category); err != nil {
		return err
	}
	logger.WithContext(ctx).Debug().Str("filter", string(category)).Msg("Usecase: SelectCategoryAndShop")
	return nil
}

func (u *NavigationUsecase) ShopAll(ctx context.Context, s *storefront.Session) {
	s.ShopAll()
}

func (u *NavigationUsecase) GoHome(ctx context.Context, s *storefront.Session) {
	s.GoHome()
}

// Screen returns the data for the session's active view.
func (u *NavigationUsecase) Screen(ctx context.Context, s *storefront.Session) (domain.Screen, error) {
	catalog, err := u.catalog.Catalog(ctx)
	if err != nil {
		return domain.Screen{}, err
	}
	return s.Route(catalog), nil
}
