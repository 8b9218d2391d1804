package v1

import (
	"net/http"

	"lunaloops-storefront/internal/usecase"
	"lunaloops-storefront/pkg/utils"
)

type WishlistHandler struct {
	usecase *usecase.WishlistUsecase
}

func NewWishlistHandler(usecase *usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{usecase: usecase}
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	wishlist, err := h.usecase.GetWishlist(r.Context(), s)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, wishlist)
}

// POST /api/v1/wishlist/{productId}/toggle
func (h *WishlistHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	productID := r.PathValue("productId")
	wishlisted, err := h.usecase.ToggleWishlist(r.Context(), s, productID)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"productId":     productID,
		"isWishlisted":  wishlisted,
		"wishlistCount": s.WishlistCount(),
	})
}
