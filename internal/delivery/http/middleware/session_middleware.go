package middleware

import (
	"errors"
	"net/http"

	"lunaloops-storefront/internal/domain"
	"lunaloops-storefront/internal/storefront"
	"lunaloops-storefront/internal/usecase"
	"lunaloops-storefront/pkg/logger"
	"lunaloops-storefront/pkg/utils"
)

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "session_id"
)

// NewSessionMiddleware resolves the shopper session from the X-Session-ID
// header, falling back to the session_id cookie.
func NewSessionMiddleware(sessions *usecase.SessionUsecase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Get Session ID from Header or Cookie
			sessionID := r.Header.Get(SessionHeader)
			if sessionID == "" {
				if cookie, err := r.Cookie(SessionCookie); err == nil {
					sessionID = cookie.Value
				}
			}

			if sessionID == "" {
				utils.WriteError(w, http.StatusUnauthorized, "Session required")
				return
			}

			// 2. Resolve Session
			s, err := sessions.GetSession(r.Context(), sessionID)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					utils.WriteError(w, http.StatusNotFound, "Session not found")
					return
				}
				utils.WriteError(w, http.StatusInternalServerError, err.Error())
				return
			}

			// 3. Set Context
			sessLogger := logger.WithSessionID(*logger.WithContext(r.Context()), s.ID())
			ctx := logger.NewContext(r.Context(), &sessLogger)
			ctx = storefront.NewContext(ctx, s)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
