package memory

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lunaloops-storefront/internal/domain"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.json
var defaultCatalog []byte

type catalogFile struct {
	Products []productRecord `json:"products" yaml:"products"`
	Reviews  []reviewRecord  `json:"reviews" yaml:"reviews"`
	Tiles    []tileRecord    `json:"tiles" yaml:"tiles"`
}

type productRecord struct {
	ID           string          `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name"`
	Price        decimal.Decimal `json:"price" yaml:"price"`
	Category     string          `json:"category" yaml:"category"`
	Color        string          `json:"color" yaml:"color"`
	Image        string          `json:"image" yaml:"image"`
	IsBestSeller bool            `json:"isBestSeller" yaml:"isBestSeller"`
	Description  string          `json:"description" yaml:"description"`
}

type reviewRecord struct {
	ID          string `json:"id" yaml:"id"`
	Author      string `json:"author" yaml:"author"`
	Rating      int    `json:"rating" yaml:"rating"`
	Comment     string `json:"comment" yaml:"comment"`
	ProductName string `json:"productName" yaml:"productName"`
}

type tileRecord struct {
	Category string `json:"category" yaml:"category"`
	Image    string `json:"image" yaml:"image"`
}

// CatalogRepository serves a catalog loaded once at startup. Nothing writes to it afterwards.
type CatalogRepository struct {
	products []domain.Product
	byID     map[string]int
	reviews  []domain.Review
	tiles    []domain.CategoryTile
}

// NewDefaultCatalogRepository loads the built-in Luna Loops catalog.
func NewDefaultCatalogRepository() (*CatalogRepository, error) {
	return parseCatalog(defaultCatalog, ".json")
}

// NewCatalogRepositoryFromFile loads a .json, .yaml or .yml catalog.
func NewCatalogRepositoryFromFile(path string) (*CatalogRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return parseCatalog(data, filepath.Ext(path))
}

func parseCatalog(data []byte, ext string) (*CatalogRepository, error) {
	var file catalogFile

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse catalog json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse catalog yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}

	return newCatalogRepository(file)
}

func newCatalogRepository(file catalogFile) (*CatalogRepository, error) {
	repo := &CatalogRepository{
		products: make([]domain.Product, 0, len(file.Products)),
		byID:     make(map[string]int, len(file.Products)),
		reviews:  make([]domain.Review, 0, len(file.Reviews)),
		tiles:    make([]domain.CategoryTile, 0, len(file.Tiles)),
	}

	for _, rec := range file.Products {
		if rec.ID == "" {
			return nil, fmt.Errorf("product %q has no id", rec.Name)
		}
		if _, dup := repo.byID[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", rec.ID)
		}
		category := domain.Category(rec.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("product %q: %w %q", rec.ID, domain.ErrInvalidCategory, rec.Category)
		}
		price := rec.Price
		if price.IsNegative() {
			return nil, fmt.Errorf("product %q has negative price %s", rec.ID, price)
		}

		repo.byID[rec.ID] = len(repo.products)
		repo.products = append(repo.products, domain.Product{
			ID:           rec.ID,
			Name:         rec.Name,
			Price:        price,
			Category:     category,
			Color:        rec.Color,
			Image:        rec.Image,
			IsBestSeller: rec.IsBestSeller,
			Description:  rec.Description,
		})
	}

	for _, rec := range file.Reviews {
		if rec.Rating < 1 || rec.Rating > 5 {
			return nil, fmt.Errorf("review %q: rating must be between 1 and 5, got %d", rec.ID, rec.Rating)
		}
		repo.reviews = append(repo.reviews, domain.Review(rec))
	}

	for _, rec := range file.Tiles {
		category := domain.Category(rec.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("tile: %w %q", domain.ErrInvalidCategory, rec.Category)
		}
		repo.tiles = append(repo.tiles, domain.CategoryTile{Category: category, Image: rec.Image})
	}

	return repo, nil
}

func (r *CatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *CatalogRepository) ListReviews(ctx context.Context) ([]domain.Review, error) {
	out := make([]domain.Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}

func (r *CatalogRepository) ListCategoryTiles(ctx context.Context) ([]domain.CategoryTile, error) {
	out := make([]domain.CategoryTile, len(r.tiles))
	copy(out, r.tiles)
	return out, nil
}

func (r *CatalogRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrProductNotFound, id)
	}
	p := r.products[i]
	return &p, nil
}
