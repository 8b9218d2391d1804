package v1

import (
	"net/http"

	"lunaloops-storefront/internal/domain"
	"lunaloops-storefront/pkg/utils"
)

type ConfigHandler struct {
	pricing domain.PricingConfig
}

func NewConfigHandler(pricing domain.PricingConfig) *ConfigHandler {
	return &ConfigHandler{pricing: pricing}
}

// GET /api/v1/config/enums
func (h *ConfigHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	filters := append([]domain.Category{domain.FilterAll}, domain.Categories...)

	w.Header().Set("Cache-Control", "public, max-age=3600")
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"categories": domain.Categories,
		"filters":    filters,
		"views":      domain.Views,
		"pricing":    h.pricing,
	})
}
