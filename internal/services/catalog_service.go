package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "pricetrack/internal/errors"
	"pricetrack/internal/models"
)

// catalogService serves read-only catalog lookups.
type catalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new CatalogServicer.
func NewCatalogService(db *gorm.DB) CatalogServicer {
	return &catalogService{db: db}
}

// ListProducts returns active products ordered by name.
func (s *catalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		Where("is_active = ?", true).
		Order("name ASC, id ASC").
		Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return products, nil
}

// GetProductByBarcode looks up a product by its barcode.
func (s *catalogService) GetProductByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "barcode is required")
	}

	var product models.Product
	if err := s.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		Where("barcode = ?", barcode).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &product, nil
}

// ListSupermarkets returns active supermarkets ordered by name.
func (s *catalogService) ListSupermarkets(ctx context.Context) ([]models.Supermarket, error) {
	markets := []models.Supermarket{}
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC, id ASC").
		Find(&markets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return markets, nil
}

// ListBranches returns the active branches of a supermarket ordered by name.
func (s *catalogService) ListBranches(ctx context.Context, supermarketID uint) ([]models.Branch, error) {
	if supermarketID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "supermarket ID is required")
	}

	db := s.db.WithContext(ctx)

	var market models.Supermarket
	if err := db.Select("id").First(&market, supermarketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSupermarketNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	branches := []models.Branch{}
	if err := db.Where("supermarket_id = ? AND is_active = ?", supermarketID, true).
		Order("name ASC, id ASC").
		Find(&branches).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return branches, nil
}
