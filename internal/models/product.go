package models

// Product is a catalog entry identified by its barcode.
type Product struct {
	Base
	Barcode    string `gorm:"uniqueIndex;not null" json:"barcode"`
	Name       string `gorm:"not null;index" json:"name"`
	BrandID    *uint  `json:"brandId,omitempty"`
	CategoryID *uint  `json:"categoryId,omitempty"`
	Image      []byte `json:"-"`
	IsActive   bool   `gorm:"default:true" json:"isActive"`

	// Relationships
	Brand    *Brand    `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
