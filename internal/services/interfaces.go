package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"pricetrack/internal/models"
	"pricetrack/internal/trend"
)

// LineItemInput is one product entry submitted with a purchase.
type LineItemInput struct {
	ProductID uint
	Quantity  int
	UnitPrice decimal.Decimal
}

// RecordPurchaseInput carries everything needed to record a purchase.
// TotalOverride, when set, is stored as the purchase total instead of the
// sum of the line subtotals.
type RecordPurchaseInput struct {
	UserID        uint
	PurchaseDate  time.Time
	BranchID      uint
	LineItems     []LineItemInput
	TotalOverride *decimal.Decimal
}

// PurchaseSummary is one row of a user's purchase history.
type PurchaseSummary struct {
	PurchaseID      uint            `json:"purchaseId"`
	UserID          uint            `json:"userId"`
	PurchaseDate    time.Time       `json:"purchaseDate"`
	Total           decimal.Decimal `json:"total"`
	BranchID        uint            `json:"branchId"`
	BranchName      string          `json:"branchName"`
	SupermarketName string          `json:"supermarketName"`
	TotalItems      int64           `json:"totalItems"`
}

// PurchaseServicer defines the contract for recording and listing purchases.
type PurchaseServicer interface {
	RecordPurchase(ctx context.Context, input RecordPurchaseInput) (*models.Purchase, error)
	GetUserPurchases(ctx context.Context, userID uint) ([]PurchaseSummary, error)
}

// PriceHistoryEntry is one valid observation of a product with its trend
// against the next-older observation.
type PriceHistoryEntry struct {
	ObservationID uint            `json:"observationId"`
	ProductID     uint            `json:"productId"`
	Price         decimal.Decimal `json:"price"`
	ObservedOn    time.Time       `json:"observedOn"`
	BranchID      uint            `json:"branchId"`
	BranchName    string          `json:"branchName"`
	UserID        uint            `json:"userId"`
	UserName      string          `json:"userName"`
	Trend         trend.Trend     `json:"trend"`
}

// PurchaseItemView is a line item enriched with its catalog entry.
type PurchaseItemView struct {
	LineItemID  uint            `json:"lineItemId"`
	PurchaseID  uint            `json:"purchaseId"`
	ProductID   uint            `json:"productId"`
	Barcode     string          `json:"barcode"`
	ProductName string          `json:"productName"`
	Brand       string          `json:"brand,omitempty"`
	Category    string          `json:"category,omitempty"`
	Image       string          `json:"image,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SupermarketPrice is the latest valid price of a product within a chain.
type SupermarketPrice struct {
	ProductID     uint            `json:"productId"`
	ProductName   string          `json:"productName"`
	Barcode       string          `json:"barcode"`
	Brand         string          `json:"brand,omitempty"`
	Price         decimal.Decimal `json:"price"`
	ObservedOn    time.Time       `json:"observedOn"`
	BranchID      uint            `json:"branchId"`
	BranchName    string          `json:"branchName"`
	ObservationID uint            `json:"observationId"`
}

// PriceHistoryServicer defines the contract for read-only price history.
type PriceHistoryServicer interface {
	GetProductHistory(ctx context.Context, productID uint) ([]PriceHistoryEntry, error)
	GetPurchaseItems(ctx context.Context, purchaseID uint) ([]PurchaseItemView, error)
	GetSupermarketPrices(ctx context.Context, supermarketID uint) ([]SupermarketPrice, error)
}

// FeedQuery selects records of the community price feed. A zero Limit
// means the feed default; any other value is clamped to the feed window.
type FeedQuery struct {
	Limit  int
	Search string
}

// FeedRecord is one valid observation as shown in the community feed.
type FeedRecord struct {
	ObservationID   uint            `json:"observationId"`
	ProductID       uint            `json:"productId"`
	ProductName     string          `json:"productName"`
	Barcode         string          `json:"barcode"`
	Brand           string          `json:"brand,omitempty"`
	Category        string          `json:"category,omitempty"`
	Price           decimal.Decimal `json:"price"`
	ObservedOn      time.Time       `json:"observedOn"`
	BranchID        uint            `json:"branchId"`
	BranchName      string          `json:"branchName"`
	SupermarketID   uint            `json:"supermarketId"`
	SupermarketName string          `json:"supermarketName"`
	UserID          uint            `json:"userId"`
	UserName        string          `json:"userName"`
}

// Feed is a window of the community price feed.
type Feed struct {
	Records []FeedRecord `json:"records"`
	Count   int          `json:"count"`
	Limit   int          `json:"limit"`
}

// FeedSummary aggregates the records of a feed window.
type FeedSummary struct {
	Supermarket      string          `json:"supermarket,omitempty"`
	Count            int             `json:"count"`
	DistinctUsers    int             `json:"distinctUsers"`
	DistinctProducts int             `json:"distinctProducts"`
	AveragePrice     decimal.Decimal `json:"averagePrice"`
	Supermarkets     []string        `json:"supermarkets"`
}

// PriceFeedServicer defines the contract for the community price feed.
type PriceFeedServicer interface {
	GetFeed(ctx context.Context, query FeedQuery) (*Feed, error)
	GetFeedSummary(ctx context.Context, query FeedQuery, supermarket string) (*FeedSummary, *Feed, error)
}

// CatalogServicer defines the read-only catalog lookups used by clients.
type CatalogServicer interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProductByBarcode(ctx context.Context, barcode string) (*models.Product, error)
	ListSupermarkets(ctx context.Context) ([]models.Supermarket, error)
	ListBranches(ctx context.Context, supermarketID uint) ([]models.Branch, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]any)
}
