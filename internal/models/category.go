package models

// Category groups products in the shared catalog.
type Category struct {
	Base
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Brand is the manufacturer label of a product.
type Brand struct {
	Base
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
