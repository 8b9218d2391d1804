package v1

import (
	"net/http"
	"time"

	"lunaloops-storefront/internal/delivery/http/middleware"
	"lunaloops-storefront/internal/usecase"
	"lunaloops-storefront/pkg/utils"
)

type SessionHandler struct {
	sessionUC  *usecase.SessionUsecase
	sessionTTL time.Duration
}

func NewSessionHandler(uc *usecase.SessionUsecase, sessionTTL time.Duration) *SessionHandler {
	return &SessionHandler{sessionUC: uc, sessionTTL: sessionTTL}
}

// POST /api/v1/sessions
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessionUC.StartSession(r.Context())
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    s.ID(),
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set(middleware.SessionHeader, s.ID())
	utils.WriteJSON(w, http.StatusCreated, s.Snapshot())
}

// GET /api/v1/session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, s.Snapshot())
}

// DELETE /api/v1/session
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	if err := h.sessionUC.EndSession(r.Context(), s.ID()); err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: middleware.SessionCookie, Value: "", Path: "/", MaxAge: -1})
	w.WriteHeader(http.StatusNoContent)
}
