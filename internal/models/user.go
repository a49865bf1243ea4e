package models

// User is a community member who reports prices through purchases.
type User struct {
	Base
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	TrustLevel int    `gorm:"default:0" json:"trustLevel"`
	IsActive   bool   `gorm:"default:true" json:"isActive"`
}
