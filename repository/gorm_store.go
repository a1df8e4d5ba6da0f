package repository

import (
	"context"
	"errors"
	"fmt"

	"rental-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists to MySQL. Every mutation runs in one transaction with the
// room row (then the property row) locked FOR UPDATE.
type GormStore struct {
	DB *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func notFound(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("failed to load %s %d: %w", what, id, err)
}

func (s *GormStore) CreateProperty(ctx context.Context, property *models.Property) error {
	if err := s.DB.WithContext(ctx).Omit("Rooms").Create(property).Error; err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

func (s *GormStore) GetProperty(ctx context.Context, id uint) (models.Property, error) {
	var p models.Property
	err := s.DB.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&p, id).Error
	if err != nil {
		return models.Property{}, notFound(err, "property", id)
	}
	if p.Rooms == nil {
		p.Rooms = []models.Room{}
	}
	return p, nil
}

func (s *GormStore) GetRoom(ctx context.Context, id uint) (models.Room, error) {
	var r models.Room
	if err := s.DB.WithContext(ctx).First(&r, id).Error; err != nil {
		return models.Room{}, notFound(err, "room", id)
	}
	return r, nil
}

func (s *GormStore) GetBooking(ctx context.Context, id uint) (models.Booking, error) {
	var b models.Booking
	if err := s.DB.WithContext(ctx).Preload("Room").First(&b, id).Error; err != nil {
		return models.Booking{}, notFound(err, "booking", id)
	}
	return b, nil
}

func (s *GormStore) ListRoomBookings(ctx context.Context, roomID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for room %d: %w", roomID, err)
	}
	return list, nil
}

func (s *GormStore) UpdateRoom(ctx context.Context, roomID uint, fn RoomUpdateFunc) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
			return notFound(err, "room", roomID)
		}

		var property models.Property
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&property, room.PropertyID).Error; err != nil {
			return notFound(err, "property", room.PropertyID)
		}

		change, err := fn(room, property)
		if err != nil {
			return err
		}

		if change.Booking != nil {
			if err := tx.Omit("Room").Create(change.Booking).Error; err != nil {
				return fmt.Errorf("failed to create booking: %w", err)
			}
		}

		if change.Delete {
			if err := tx.Delete(&models.Room{}, room.ID).Error; err != nil {
				return fmt.Errorf("failed to delete room %d: %w", room.ID, err)
			}
		} else if change.Room != nil {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", room.ID).
				Updates(map[string]interface{}{
					"status":   change.Room.Status,
					"occupied": change.Room.Occupied,
				}).Error; err != nil {
				return fmt.Errorf("failed to update room %d: %w", room.ID, err)
			}
		}

		if change.Stats != nil {
			if err := writeStats(tx, property.ID, *change.Stats); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) UpdateProperty(ctx context.Context, propertyID uint, fn PropertyUpdateFunc) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&property, propertyID).Error; err != nil {
			return notFound(err, "property", propertyID)
		}

		var rooms []models.Room
		if err := tx.Where("property_id = ?", propertyID).Order("id ASC").Find(&rooms).Error; err != nil {
			return fmt.Errorf("failed to load rooms of property %d: %w", propertyID, err)
		}

		change, err := fn(property, rooms)
		if err != nil {
			return err
		}

		if change.NewRoom != nil {
			change.NewRoom.PropertyID = property.ID
			if err := tx.Create(change.NewRoom).Error; err != nil {
				return fmt.Errorf("failed to create room: %w", err)
			}
		}
		if change.Stats != nil {
			if err := writeStats(tx, property.ID, *change.Stats); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeStats(tx *gorm.DB, propertyID uint, stats models.InventoryStats) error {
	err := tx.Model(&models.Property{}).
		Where("id = ?", propertyID).
		Updates(map[string]interface{}{
			"total_rooms":       stats.Total,
			"available_rooms":   stats.Available,
			"occupied_rooms":    stats.Occupied,
			"maintenance_rooms": stats.Maintenance,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update stats of property %d: %w", propertyID, err)
	}
	return nil
}
