package repository

import (
	"context"
	"errors"

	"rental-backend/models"
)

var ErrNotFound = errors.New("record not found")

// RoomChange is what a RoomUpdateFunc wants committed. Nil fields are left
// untouched. Booking, when set, is inserted and gets its ID filled in.
type RoomChange struct {
	Room    *models.Room
	Delete  bool
	Stats   *models.InventoryStats
	Booking *models.Booking
}

// RoomUpdateFunc decides the next state from a locked snapshot of a room and
// its owning property. Returning an error aborts without writing anything.
type RoomUpdateFunc func(room models.Room, property models.Property) (RoomChange, error)

// PropertyChange is what a PropertyUpdateFunc wants committed. NewRoom, when
// set, is inserted under the property and gets its ID filled in.
type PropertyChange struct {
	Stats   *models.InventoryStats
	NewRoom *models.Room
}

type PropertyUpdateFunc func(property models.Property, rooms []models.Room) (PropertyChange, error)

// Store owns room, property and booking records. UpdateRoom serializes all
// callers for the same room id, so the snapshot handed to fn is current for
// the whole read-decide-write sequence.
type Store interface {
	CreateProperty(ctx context.Context, property *models.Property) error
	GetProperty(ctx context.Context, id uint) (models.Property, error)
	GetRoom(ctx context.Context, id uint) (models.Room, error)
	GetBooking(ctx context.Context, id uint) (models.Booking, error)
	ListRoomBookings(ctx context.Context, roomID uint) ([]models.Booking, error)

	UpdateRoom(ctx context.Context, roomID uint, fn RoomUpdateFunc) error
	UpdateProperty(ctx context.Context, propertyID uint, fn PropertyUpdateFunc) error
}
