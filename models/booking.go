package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"referenceCode"`
	RoomID        uint   `gorm:"column:room_id;index;not null" json:"roomId"`

	StartDate  time.Time     `gorm:"column:start_date;type:date" json:"startDate"`
	EndDate    time.Time     `gorm:"column:end_date;type:date" json:"endDate"`
	TotalPrice float64       `gorm:"column:total_price;type:decimal(12,2)" json:"totalPrice"`
	Status     BookingStatus `gorm:"column:status;size:32" json:"status"`
	Notes      string        `gorm:"column:notes;type:text" json:"notes,omitempty"`

	// snapshot of the stay computation at submission time
	Quote datatypes.JSON `gorm:"column:quote" json:"quote,omitempty"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
