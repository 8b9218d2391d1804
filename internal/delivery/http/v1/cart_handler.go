package v1

import (
	"net/http"

	"lunaloops-storefront/internal/domain"
	"lunaloops-storefront/internal/usecase"
	"lunaloops-storefront/pkg/utils"
)

type CartHandler struct {
	cartUC *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUC: uc}
}

// --- Cart Handlers ---

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.cartUC.GetCart(r.Context(), s))
}

type addToCartReq struct {
	ProductID string `json:"productId"`
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	var req addToCartReq
	if err := utils.DecodeJSON(r.Body, &req); err != nil || req.ProductID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request: productId required")
		return
	}

	cart, events, err := h.cartUC.AddToCart(r.Context(), s, req.ProductID)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, domain.Response{Data: cart, Events: events})
}

type updateCartReq struct {
	Delta int `json:"delta"`
}

// PATCH /api/v1/cart/{productId}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	productID := r.PathValue("productId")

	var req updateCartReq
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	cart, err := h.cartUC.UpdateQuantity(r.Context(), s, productID, req.Delta)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	cart, err := h.cartUC.RemoveFromCart(r.Context(), s, r.PathValue("productId"))
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

// GET /api/v1/checkout
func (h *CartHandler) GetCheckoutSummary(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.cartUC.CheckoutSummary(r.Context(), s))
}

// POST /api/v1/checkout moves the shopper to the checkout view. It places no order.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	summary, events := h.cartUC.Checkout(r.Context(), s)
	utils.WriteJSON(w, http.StatusOK, domain.Response{Data: summary, Events: events})
}
