package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "pricetrack/internal/errors"
	"pricetrack/internal/models"
)

// errNoPurchaseID marks a header insert that did not yield an identifier.
var errNoPurchaseID = errors.New("purchase insert returned no id")

// purchaseService records purchases and the price observations derived
// from their line items.
type purchaseService struct {
	db *gorm.DB
}

// NewPurchaseService creates a new PurchaseServicer.
func NewPurchaseService(db *gorm.DB) PurchaseServicer {
	return &purchaseService{db: db}
}

// RecordPurchase validates input and writes the purchase header, its line
// items and one valid price observation per item in a single transaction.
// Either every row is committed or none is.
func (s *purchaseService) RecordPurchase(ctx context.Context, input RecordPurchaseInput) (*models.Purchase, error) {
	items, err := normalizeLineItems(input)
	if err != nil {
		return nil, err
	}

	purchaseDate := truncateToDay(input.PurchaseDate)
	total := purchaseTotal(items, input.TotalOverride)

	purchase := &models.Purchase{
		UserID:       input.UserID,
		PurchaseDate: purchaseDate,
		Total:        total,
		BranchID:     input.BranchID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(purchase).Error; err != nil {
			return fmt.Errorf("insert purchase: %w", err)
		}
		if purchase.ID == 0 {
			return errNoPurchaseID
		}

		lineItems := make([]models.PurchaseLineItem, 0, len(items))
		for i, item := range items {
			lineItem := models.PurchaseLineItem{
				PurchaseID: purchase.ID,
				ProductID:  item.ProductID,
				UnitPrice:  item.UnitPrice,
				Quantity:   item.Quantity,
				Subtotal:   models.LineSubtotal(item.Quantity, item.UnitPrice),
			}
			if err := tx.Create(&lineItem).Error; err != nil {
				return fmt.Errorf("insert line item %d: %w", i, err)
			}

			observation := models.PriceObservation{
				ProductID:  item.ProductID,
				BranchID:   input.BranchID,
				Price:      item.UnitPrice,
				ObservedOn: purchaseDate,
				UserID:     input.UserID,
				IsValid:    true,
			}
			if err := tx.Create(&observation).Error; err != nil {
				return fmt.Errorf("insert price observation %d: %w", i, err)
			}
			lineItems = append(lineItems, lineItem)
		}
		purchase.LineItems = lineItems
		return nil
	})
	if err != nil {
		return nil, persistenceError(err)
	}

	return purchase, nil
}

// GetUserPurchases lists a user's purchases newest-first with branch,
// supermarket and item count.
func (s *purchaseService) GetUserPurchases(ctx context.Context, userID uint) ([]PurchaseSummary, error) {
	if userID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "user ID is required")
	}

	summaries := []PurchaseSummary{}
	err := s.db.WithContext(ctx).
		Table("purchases AS pu").
		Select(`pu.id AS purchase_id, pu.user_id, pu.purchase_date, pu.total, pu.branch_id,
			COALESCE(b.name, '') AS branch_name, COALESCE(sm.name, '') AS supermarket_name,
			COUNT(li.id) AS total_items`).
		Joins("LEFT JOIN branches b ON b.id = pu.branch_id").
		Joins("LEFT JOIN supermarkets sm ON sm.id = b.supermarket_id").
		Joins("LEFT JOIN purchase_line_items li ON li.purchase_id = pu.id").
		Where("pu.user_id = ?", userID).
		Group("pu.id, pu.user_id, pu.purchase_date, pu.total, pu.branch_id, b.name, sm.name").
		Order("pu.purchase_date DESC, pu.id DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return summaries, nil
}

// normalizeLineItems checks the purchase input and returns its line items
// with unit prices rounded to cents.
func normalizeLineItems(input RecordPurchaseInput) ([]LineItemInput, error) {
	if input.UserID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "user ID is required")
	}
	if input.BranchID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "branch ID is required")
	}
	if input.PurchaseDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "purchase date is required")
	}
	if len(input.LineItems) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one line item is required")
	}
	if input.TotalOverride != nil && !input.TotalOverride.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "total must be greater than zero")
	}
	if input.TotalOverride != nil && !input.TotalOverride.Equal(models.RoundMoney(*input.TotalOverride)) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "total must not have more than two decimal places")
	}

	items := make([]LineItemInput, len(input.LineItems))
	for i, item := range input.LineItems {
		if item.ProductID == 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("line item %d: product ID is required", i+1))
		}
		if item.Quantity <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("line item %d: quantity must be greater than zero", i+1))
		}
		price := models.RoundMoney(item.UnitPrice)
		if !price.IsPositive() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("line item %d: unit price must be greater than zero", i+1))
		}
		items[i] = LineItemInput{ProductID: item.ProductID, Quantity: item.Quantity, UnitPrice: price}
	}
	return items, nil
}

// purchaseTotal returns override verbatim when set, else the sum of the
// line subtotals.
func purchaseTotal(items []LineItemInput, override *decimal.Decimal) decimal.Decimal {
	if override != nil {
		return *override
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(models.LineSubtotal(item.Quantity, item.UnitPrice))
	}
	return total
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// persistenceError maps a failed unit of work to the error callers see.
func persistenceError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Wrap(apperrors.ErrConflict, err)
	}
	return apperrors.Wrap(apperrors.ErrPersistence, err)
}
