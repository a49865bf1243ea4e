package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceObservation records that a product sold at a price at a branch on a day.
// Observations are immutable time-series rows derived from purchase line items;
// only valid ones feed history, trends and the community feed.
type PriceObservation struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	ProductID  uint            `gorm:"not null;index:idx_price_observations_product_date,priority:1" json:"productId"`
	BranchID   uint            `gorm:"not null;index" json:"branchId"`
	Price      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
	ObservedOn time.Time       `gorm:"type:date;not null;index:idx_price_observations_product_date,priority:2" json:"observedOn"`
	UserID     uint            `gorm:"not null;index" json:"userId"`
	IsValid    bool            `gorm:"not null;default:true" json:"isValid"`
	CreatedAt  time.Time       `json:"createdAt"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
	Branch  *Branch  `gorm:"foreignKey:BranchID" json:"-"`
	User    *User    `gorm:"foreignKey:UserID" json:"-"`
}
