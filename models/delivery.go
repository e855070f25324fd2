package models

import "time"

type Delivery struct {
	ID                uint             `gorm:"primaryKey" json:"id"`
	OrderID           uint             `gorm:"not null;index" json:"order_id"`
	Order             *Order           `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"order,omitempty"`
	DeliveryPartnerID uint             `gorm:"not null;index" json:"delivery_partner_id"`
	DeliveryPartner   *DeliveryPartner `gorm:"foreignKey:DeliveryPartnerID" json:"delivery_partner,omitempty"`
	Status            string           `gorm:"type:varchar(20);not null;default:'Assigned'" json:"status"`
	PickupTime        *time.Time       `json:"pickup_time,omitempty"`
	DeliveredTime     *time.Time       `json:"delivered_time,omitempty"`
	CreatedAt         time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time        `gorm:"not null" json:"updated_at"`
}
