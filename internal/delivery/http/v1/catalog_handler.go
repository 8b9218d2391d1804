package v1

import (
	"net/http"

	"lunaloops-storefront/internal/domain"
	"lunaloops-storefront/internal/usecase"
	"lunaloops-storefront/pkg/utils"
)

type CatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc}
}

// GET /api/v1/products?category=Silk
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := domain.FilterAll
	if c := r.URL.Query().Get("category"); c != "" {
		filter = domain.Category(c)
	}

	products, err := h.catalogUC.ListProducts(r.Context(), filter)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"filter": filter,
		"data":   products,
		"total":  len(products),
	})
}

// GET /api/v1/products/best-sellers
func (h *CatalogHandler) BestSellers(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUC.BestSellers(r.Context())
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Product ID required")
		return
	}

	product, err := h.catalogUC.GetProductByID(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}

// GET /api/v1/categories
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	tiles, err := h.catalogUC.ListCategoryTiles(r.Context())
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, tiles)
}

func (h *CatalogHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.catalogUC.ListReviews(r.Context())
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, reviews)
}
