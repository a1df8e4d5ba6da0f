package models

import (
	"gorm.io/gorm"
)

// InventoryStats is the cached per-property room count by status.
type InventoryStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Maintenance int `json:"maintenance"`
}

type Property struct {
	gorm.Model

	Name       string `json:"name" gorm:"size:255"`
	Address    string `json:"address" gorm:"type:text"`
	OwnerEmail string `json:"ownerEmail" gorm:"column:owner_email;size:150"`

	TotalRooms       int `json:"totalRooms" gorm:"column:total_rooms;not null;default:0"`
	AvailableRooms   int `json:"availableRooms" gorm:"column:available_rooms;not null;default:0"`
	OccupiedRooms    int `json:"occupiedRooms" gorm:"column:occupied_rooms;not null;default:0"`
	MaintenanceRooms int `json:"maintenanceRooms" gorm:"column:maintenance_rooms;not null;default:0"`

	Rooms []Room `gorm:"foreignKey:PropertyID" json:"rooms,omitempty"`
}

func (p Property) Stats() InventoryStats {
	return InventoryStats{
		Total:       p.TotalRooms,
		Available:   p.AvailableRooms,
		Occupied:    p.OccupiedRooms,
		Maintenance: p.MaintenanceRooms,
	}
}

func (p *Property) SetStats(s InventoryStats) {
	p.TotalRooms = s.Total
	p.AvailableRooms = s.Available
	p.OccupiedRooms = s.Occupied
	p.MaintenanceRooms = s.Maintenance
}
