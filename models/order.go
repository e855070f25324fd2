package models

import "time"

// OrderStatus is a closed three-value enum. There is no transition
// validation: any handler may set any of the three values directly.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	OrderDate    time.Time   `gorm:"not null" json:"order_date"`
	OrderTime    string      `gorm:"type:varchar(16)" json:"order_time"`
	TotalAmount  float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	DeliveryFee  float64     `gorm:"type:decimal(10,2);not null" json:"delivery_fee"`
	OrderStatus  OrderStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"order_status"`
	UserID       *uint       `gorm:"index" json:"user_id,omitempty"`
	User         *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	RestaurantID uint        `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	OrderItems   []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
	Address      string      `gorm:"type:text;not null" json:"address"`
	AddressLink  string      `gorm:"type:text;not null" json:"address_link"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updated_at"`
}
