package services

import (
	"rental-backend/models"
)

func bucket(stats *models.InventoryStats, s models.RoomStatus) *int {
	switch s {
	case models.RoomAvailable:
		return &stats.Available
	case models.RoomOccupied:
		return &stats.Occupied
	case models.RoomMaintenance:
		return &stats.Maintenance
	}
	return nil
}

// ApplyTransition moves one room from the from bucket to the to bucket in O(1).
// On error the input stats are returned unchanged.
func ApplyTransition(stats models.InventoryStats, from, to models.RoomStatus) (models.InventoryStats, error) {
	next := stats
	src, dst := bucket(&next, from), bucket(&next, to)
	if src == nil || dst == nil {
		return stats, reject(ReasonUnknownRoomStatus, "cannot count transition %q -> %q", from, to)
	}
	if from == to {
		return stats, nil
	}
	if *src <= 0 {
		return stats, reject(ReasonInventoryDrift, "no %s room recorded to move to %s", from, to)
	}
	*src--
	*dst++
	return next, nil
}

// AddRoom counts a newly created room.
func AddRoom(stats models.InventoryStats, status models.RoomStatus) (models.InventoryStats, error) {
	next := stats
	b := bucket(&next, status)
	if b == nil {
		return stats, reject(ReasonUnknownRoomStatus, "cannot count room with status %q", status)
	}
	*b++
	next.Total++
	return next, nil
}

// RemoveRoom uncounts a deleted room.
func RemoveRoom(stats models.InventoryStats, status models.RoomStatus) (models.InventoryStats, error) {
	next := stats
	b := bucket(&next, status)
	if b == nil {
		return stats, reject(ReasonUnknownRoomStatus, "cannot uncount room with status %q", status)
	}
	if *b <= 0 || next.Total <= 0 {
		return stats, reject(ReasonInventoryDrift, "no %s room recorded to remove", status)
	}
	*b--
	next.Total--
	return next, nil
}

// Recount rebuilds stats with a full scan. Repair path only.
func Recount(rooms []models.Room) (models.InventoryStats, error) {
	var stats models.InventoryStats
	for _, r := range rooms {
		next, err := AddRoom(stats, r.Status)
		if err != nil {
			return models.InventoryStats{}, err
		}
		stats = next
	}
	return stats, nil
}

// CheckInventory verifies available + occupied + maintenance == total.
func CheckInventory(stats models.InventoryStats) error {
	if stats.Total < 0 || stats.Available < 0 || stats.Occupied < 0 || stats.Maintenance < 0 {
		return reject(ReasonInventoryDrift, "negative counter in %+v", stats)
	}
	if stats.Available+stats.Occupied+stats.Maintenance != stats.Total {
		return reject(ReasonInventoryDrift, "buckets do not sum to total in %+v", stats)
	}
	return nil
}
