package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// --- Interfaces ---

// CatalogRepository is the read-only product and review source.
// Implementations must return products and reviews in catalog order.
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	ListReviews(ctx context.Context) ([]Review, error)
	ListCategoryTiles(ctx context.Context) ([]CategoryTile, error)
	GetProductByID(ctx context.Context, id string) (*Product, error)
}

type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Category     Category        `json:"category"`
	Color        string          `json:"color"`
	Image        string          `json:"image"`
	IsBestSeller bool            `json:"isBestSeller"`
	Description  string          `json:"description"`
}

type Review struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	Rating      int    `json:"rating"` // 1-5
	Comment     string `json:"comment"`
	ProductName string `json:"productName"`
}

// CategoryTile is the home-page "Shop by Fabric" entry.
type CategoryTile struct {
	Category Category `json:"category"`
	Image    string   `json:"image"`
}
