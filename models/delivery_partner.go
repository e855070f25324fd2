package models

import "time"

type DeliveryPartner struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone         string    `gorm:"type:varchar(32);not null" json:"phone"`
	Email         string    `gorm:"type:varchar(255)" json:"email"`
	VehicleNumber string    `gorm:"type:varchar(32)" json:"vehicle_number"`
	IsAvailable   bool      `gorm:"not null;default:true" json:"is_available"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}
