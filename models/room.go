package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	PropertyID uint   `json:"propertyId" gorm:"column:property_id;index;not null"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;type:varchar(50)"`
	Floor      string `json:"floor" gorm:"type:varchar(10)"`

	Capacity int        `json:"capacity" gorm:"not null;default:1"`
	Occupied int        `json:"occupied" gorm:"not null;default:0"`
	Status   RoomStatus `json:"status" gorm:"type:varchar(20);not null;default:available"`

	PricingModel  PricingModel  `json:"pricingModel" gorm:"column:pricing_model;type:varchar(20);not null;default:full_room"`
	MonthlyRate   float64       `json:"monthlyRate" gorm:"column:monthly_rate;type:decimal(10,2);not null"`
	DailyRate     *float64      `json:"dailyRate" gorm:"column:daily_rate;type:decimal(10,2)"`
	BillingPolicy BillingPolicy `json:"billingPolicy" gorm:"column:billing_policy;type:varchar(32);not null;default:monthly"`
}
