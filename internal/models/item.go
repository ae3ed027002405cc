package models

type Item struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Description string  `gorm:"not null" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Quantity    int     `gorm:"not null" json:"quantity"`
}
