package v1

import (
	"net/http"

	"lunaloops-storefront/internal/domain"
	"lunaloops-storefront/internal/usecase"
	"lunaloops-storefront/pkg/utils"
)

type NavigationHandler struct {
	navUC *usecase.NavigationUsecase
}

func NewNavigationHandler(uc *usecase.NavigationUsecase) *NavigationHandler {
	return &NavigationHandler{navUC: uc}
}

type filterReq struct {
	Category domain.Category `json:"category"`
}

// PUT /api/v1/filter
func (h *NavigationHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	var req filterReq
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := h.navUC.SetFilter(r.Context(), s, req.Category); err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	h.writeScreen(w, r)
}

type viewReq struct {
	View domain.View `json:"view"`
}

// PUT /api/v1/view
func (h *NavigationHandler) SetView(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	var req viewReq
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := h.navUC.SetView(r.Context(), s, req.View); err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	h.writeScreen(w, r)
}

// POST /api/v1/shop/{category} is the category tile and footer shortcut.
func (h *NavigationHandler) SelectCategoryAndShop(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	if err := h.navUC.SelectCategoryAndShop(r.Context(), s, domain.Category(r.PathValue("category"))); err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	h.writeScreen(w, r)
}

// POST /api/v1/shop
func (h *NavigationHandler) ShopAll(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	h.navUC.ShopAll(r.Context(), s)
	h.writeScreen(w, r)
}

// POST /api/v1/home
func (h *NavigationHandler) GoHome(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	h.navUC.GoHome(r.Context(), s)
	h.writeScreen(w, r)
}

// GET /api/v1/screen
func (h *NavigationHandler) GetScreen(w http.ResponseWriter, r *http.Request) {
	h.writeScreen(w, r)
}

func (h *NavigationHandler) writeScreen(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	screen, err := h.navUC.Screen(r.Context(), s)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, screen)
}
