package v1

import (
	"errors"
	"net/http"

	"lunaloops-storefront/internal/domain"
	"lunaloops-storefront/internal/storefront"
	"lunaloops-storefront/pkg/logger"
	"lunaloops-storefront/pkg/utils"
)

// sessionFrom expects the session middleware to have run.
func sessionFrom(w http.ResponseWriter, r *http.Request) (*storefront.Session, bool) {
	s, ok := storefront.FromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Session required")
		return nil, false
	}
	return s, true
}

func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrNotInCart),
		errors.Is(err, domain.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidView):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Handler: request failed")
	}
	utils.WriteError(w, status, err.Error())
}
