package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is one checkout by a user at a branch. It is written once together
// with its line items and never updated in place.
type Purchase struct {
	Base
	UserID       uint            `gorm:"not null;index" json:"userId"`
	PurchaseDate time.Time       `gorm:"type:date;not null" json:"purchaseDate"`
	Total        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total"`
	BranchID     uint            `gorm:"not null;index" json:"branchId"`

	// Relationships
	User      *User              `gorm:"foreignKey:UserID" json:"-"`
	Branch    *Branch            `gorm:"foreignKey:BranchID" json:"-"`
	LineItems []PurchaseLineItem `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE" json:"lineItems,omitempty"`
}

// PurchaseLineItem is one product entry of a purchase. Subtotal is fixed at
// creation as Quantity × UnitPrice.
type PurchaseLineItem struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	PurchaseID uint            `gorm:"not null;index" json:"purchaseId"`
	ProductID  uint            `gorm:"not null;index" json:"productId"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unitPrice"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"subtotal"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}

// LineSubtotal returns quantity × unitPrice rounded to MoneyPlaces.
func LineSubtotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return RoundMoney(unitPrice.Mul(decimal.NewFromInt(int64(quantity))))
}
