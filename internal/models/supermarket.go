package models

// Supermarket is a retail chain.
type Supermarket struct {
	Base
	Name     string   `gorm:"not null;index" json:"name"`
	Logo     string   `json:"logo,omitempty"`
	Country  string   `json:"country,omitempty"`
	IsActive bool     `gorm:"default:true" json:"isActive"`
	Branches []Branch `gorm:"foreignKey:SupermarketID" json:"branches,omitempty"`
}

// Branch is a physical store of a supermarket chain.
type Branch struct {
	Base
	SupermarketID uint     `gorm:"not null;index" json:"supermarketId"`
	Name          string   `gorm:"not null" json:"name"`
	Address       string   `json:"address,omitempty"`
	Commune       string   `json:"commune,omitempty"`
	Region        string   `json:"region,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	IsActive      bool     `gorm:"default:true" json:"isActive"`

	Supermarket *Supermarket `gorm:"foreignKey:SupermarketID" json:"supermarket,omitempty"`
}
