package services

import (
	"context"
	"encoding/base64"
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "pricetrack/internal/errors"
	"pricetrack/internal/models"
	"pricetrack/internal/trend"
)

// imageDataPrefix is prepended to base64 product images.
const imageDataPrefix = "data:image/*;base64,"

// priceHistoryService serves read-only price history.
type priceHistoryService struct {
	db *gorm.DB
}

// NewPriceHistoryService creates a new PriceHistoryServicer.
func NewPriceHistoryService(db *gorm.DB) PriceHistoryServicer {
	return &priceHistoryService{db: db}
}

type historyRow struct {
	ObservationID uint
	ProductID     uint
	Price         decimal.Decimal
	ObservedOn    time.Time
	BranchID      uint
	BranchName    *string
	UserID        uint
	UserName      *string
}

// GetProductHistory returns the valid observations of a product newest-first,
// each with its trend against the next-older one.
func (s *priceHistoryService) GetProductHistory(ctx context.Context, productID uint) ([]PriceHistoryEntry, error) {
	if productID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "product ID is required")
	}

	var product models.Product
	var rows []historyRow

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).Select("id").First(&product, productID).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Table("price_observations AS po").
			Select(`po.id AS observation_id, po.product_id, po.price, po.observed_on, po.branch_id,
				b.name AS branch_name, po.user_id, u.name AS user_name`).
			Joins("LEFT JOIN branches b ON b.id = po.branch_id").
			Joins("LEFT JOIN users u ON u.id = po.user_id").
			Where("po.product_id = ? AND po.is_valid = ?", productID, true).
			Order("po.observed_on DESC, po.id DESC").
			Scan(&rows).Error
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrPriceHistory, err)
	}

	prices := make([]decimal.Decimal, len(rows))
	for i, row := range rows {
		prices[i] = row.Price
	}
	trends := trend.Sequence(prices)

	entries := make([]PriceHistoryEntry, len(rows))
	for i, row := range rows {
		entries[i] = PriceHistoryEntry{
			ObservationID: row.ObservationID,
			ProductID:     row.ProductID,
			Price:         row.Price,
			ObservedOn:    row.ObservedOn,
			BranchID:      row.BranchID,
			BranchName:    nameOrID(row.BranchName, row.BranchID),
			UserID:        row.UserID,
			UserName:      nameOrID(row.UserName, row.UserID),
			Trend:         trends[i],
		}
	}
	return entries, nil
}

type purchaseItemRow struct {
	LineItemID   uint
	PurchaseID   uint
	ProductID    uint
	Barcode      *string
	ProductName  *string
	BrandName    *string
	CategoryName *string
	Image        []byte
	UnitPrice    decimal.Decimal
	Quantity     int
	Subtotal     decimal.Decimal
}

// GetPurchaseItems returns the line items of a purchase in insertion order.
func (s *priceHistoryService) GetPurchaseItems(ctx context.Context, purchaseID uint) ([]PurchaseItemView, error) {
	if purchaseID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "purchase ID is required")
	}

	db := s.db.WithContext(ctx)

	var purchase models.Purchase
	if err := db.Select("id").First(&purchase, purchaseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPurchaseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrPriceHistory, err)
	}

	var rows []purchaseItemRow
	err := db.Table("purchase_line_items AS li").
		Select(`li.id AS line_item_id, li.purchase_id, li.product_id, p.barcode, p.name AS product_name,
			br.name AS brand_name, c.name AS category_name, p.image,
			li.unit_price, li.quantity, li.subtotal`).
		Joins("LEFT JOIN products p ON p.id = li.product_id").
		Joins("LEFT JOIN brands br ON br.id = p.brand_id").
		Joins("LEFT JOIN categories c ON c.id = p.category_id").
		Where("li.purchase_id = ?", purchaseID).
		Order("li.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPriceHistory, err)
	}

	items := make([]PurchaseItemView, len(rows))
	for i, row := range rows {
		items[i] = PurchaseItemView{
			LineItemID:  row.LineItemID,
			PurchaseID:  row.PurchaseID,
			ProductID:   row.ProductID,
			Barcode:     deref(row.Barcode),
			ProductName: deref(row.ProductName),
			Brand:       deref(row.BrandName),
			Category:    deref(row.CategoryName),
			Image:       imageDataURL(row.Image),
			UnitPrice:   row.UnitPrice,
			Quantity:    row.Quantity,
			Subtotal:    row.Subtotal,
		}
	}
	return items, nil
}

type supermarketPriceRow struct {
	ObservationID uint
	ProductID     uint
	ProductName   string
	Barcode       string
	BrandName     *string
	Price         decimal.Decimal
	ObservedOn    time.Time
	BranchID      uint
	BranchName    string
}

// GetSupermarketPrices returns, per product, the latest valid observation at
// any branch of the supermarket, ordered by product name.
func (s *priceHistoryService) GetSupermarketPrices(ctx context.Context, supermarketID uint) ([]SupermarketPrice, error) {
	if supermarketID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "supermarket ID is required")
	}

	db := s.db.WithContext(ctx)

	var market models.Supermarket
	if err := db.Select("id").First(&market, supermarketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSupermarketNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrPriceHistory, err)
	}

	var rows []supermarketPriceRow
	err := db.Table("price_observations AS po").
		Select(`po.id AS observation_id, po.product_id, p.name AS product_name, p.barcode,
			br.name AS brand_name, po.price, po.observed_on, po.branch_id, b.name AS branch_name`).
		Joins("JOIN branches b ON b.id = po.branch_id").
		Joins("JOIN products p ON p.id = po.product_id").
		Joins("LEFT JOIN brands br ON br.id = p.brand_id").
		Where("b.supermarket_id = ? AND po.is_valid = ?", supermarketID, true).
		Order("p.name ASC, po.product_id ASC, po.observed_on DESC, po.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPriceHistory, err)
	}

	// Rows of one product are adjacent and newest-first.
	prices := []SupermarketPrice{}
	for i, row := range rows {
		if i > 0 && rows[i-1].ProductID == row.ProductID {
			continue
		}
		prices = append(prices, SupermarketPrice{
			ProductID:     row.ProductID,
			ProductName:   row.ProductName,
			Barcode:       row.Barcode,
			Brand:         deref(row.BrandName),
			Price:         row.Price,
			ObservedOn:    row.ObservedOn,
			BranchID:      row.BranchID,
			BranchName:    row.BranchName,
			ObservationID: row.ObservationID,
		})
	}
	return prices, nil
}

// nameOrID falls back to the decimal id when a joined name is missing.
func nameOrID(name *string, id uint) string {
	if name == nil || *name == "" {
		return strconv.FormatUint(uint64(id), 10)
	}
	return *name
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func imageDataURL(image []byte) string {
	if len(image) == 0 {
		return ""
	}
	return imageDataPrefix + base64.StdEncoding.EncodeToString(image)
}
