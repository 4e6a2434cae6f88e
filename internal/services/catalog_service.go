// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barrelhouse/liquorstore-backend/internal/models"
	"github.com/barrelhouse/liquorstore-backend/internal/utils"
)

type CatalogService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=255"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	ImageURL    string   `json:"imageUrl" validate:"required"`
	Quantity    int      `json:"quantity" validate:"gte=0"`
	Featured    bool     `json:"featured"`
	Tags        []string `json:"tags,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Category    *string  `json:"category,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Quantity    *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Featured    *bool    `json:"featured,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type SetStockRequest struct {
	Quantity *int  `json:"quantity" validate:"required,gte=0"`
	InStock  *bool `json:"inStock,omitempty"`
}

type ProductListParams struct {
	utils.PaginationParams
	Featured *bool
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) ListProducts(params ProductListParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Featured != nil {
		query = query.Where("featured = ?", *params.Featured)
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	// Apply pagination
	query = utils.ApplyPagination(query.Order("created_at DESC"), params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

// SearchProducts matches the query case-insensitively against name,
// description, and category. An empty query is a caller error, not an
// empty result set.
func (s *CatalogService) SearchProducts(query string) ([]models.Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("search query is required")
	}

	searchTerm := "%" + strings.ToLower(query) + "%"
	var products []models.Product
	if err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?",
			searchTerm, searchTerm, searchTerm).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return products, nil
}

func (s *CatalogService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Quantity:    req.Quantity,
		InStock:     req.Quantity > 0,
		Featured:    req.Featured,
		Tags:        req.Tags,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *CatalogService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Prepare updates
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
		// inStock tracks quantity; it is not independently settable.
		updates["in_stock"] = *req.Quantity > 0
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	if err := s.db.First(&product, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) DeleteProduct(id uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// SetStock is the admin stock override. The wire format still carries an
// inStock flag for compatibility with older clients, but quantity is the
// single source of truth: a flag contradicting the quantity is overridden.
func (s *CatalogService) SetStock(id uuid.UUID, req *SetStockRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := map[string]interface{}{
		"quantity": *req.Quantity,
		"in_stock": *req.Quantity > 0,
	}

	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	if err := s.db.First(&product, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}
	return &product, nil
}
