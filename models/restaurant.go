package models

import "time"

type Restaurant struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Code      string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"code"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string     `gorm:"type:varchar(32);not null" json:"phone"`
	Address   string     `gorm:"type:text;not null" json:"address"`
	OpenTime  string     `gorm:"type:varchar(16);not null" json:"open_time"`
	CloseTime string     `gorm:"type:varchar(16);not null" json:"close_time"`
	Image     *string    `gorm:"type:varchar(255)" json:"image"`
	MenuItems []MenuItem `gorm:"foreignKey:RestaurantID" json:"menu_items,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}
