package models

type Order struct {
	ID     uint        `gorm:"primaryKey" json:"id"`
	Amount float64     `gorm:"not null" json:"amount"`
	Note   string      `gorm:"not null" json:"note"`
	Items  []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem is the association table between orders and items.
// An item may appear in many orders; each order lists an item at most once.
type OrderItem struct {
	OrderID         uint `gorm:"primaryKey;autoIncrement:false" json:"-"`
	ItemID          uint `gorm:"primaryKey;autoIncrement:false" json:"item_id"`
	OrderedQuantity int  `gorm:"not null" json:"ordered_quantity"`
}
