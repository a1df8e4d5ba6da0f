package services

import (
	"context"
	"log"
	"strings"

	"rental-backend/models"
	"rental-backend/repository"
)

// RoomUpdate is the committed outcome of an operator action on one room.
type RoomUpdate struct {
	Room       models.Room           `json:"room"`
	Stats      models.InventoryStats `json:"stats"`
	Transition Transition            `json:"transition"`
}

type RoomService struct {
	Store    repository.Store
	Notifier Notifier
}

func NewRoomService(store repository.Store, notifier Notifier) *RoomService {
	return &RoomService{Store: store, Notifier: notifier}
}

func (s *RoomService) GetRoom(ctx context.Context, id uint) (models.Room, error) {
	return s.Store.GetRoom(ctx, id)
}

// normalizeRoom fills defaults and canonicalizes enum fields of a room about
// to be created.
func normalizeRoom(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	room.Floor = strings.TrimSpace(room.Floor)
	if room.Capacity <= 0 {
		return reject(ReasonRoomAtCapacity, "capacity must be positive, got %d", room.Capacity)
	}

	if room.Status == "" {
		room.Status = models.RoomAvailable
		if room.Occupied > 0 {
			room.Status = models.RoomOccupied
		}
	}
	status, err := models.ParseRoomStatus(string(room.Status))
	if err != nil {
		return reject(ReasonUnknownRoomStatus, "%v", err)
	}
	room.Status = status

	if room.PricingModel == "" {
		room.PricingModel = models.PricingFullRoom
	}
	if room.BillingPolicy == "" {
		room.BillingPolicy = models.BillingMonthly
	}
	policy, model, err := RoomPricing(*room)
	if err != nil {
		return err
	}
	room.BillingPolicy, room.PricingModel = policy, model

	return CheckRoomConsistency(*room)
}

// CreateRoom adds a room to a property and counts it in the property's stats.
func (s *RoomService) CreateRoom(ctx context.Context, propertyID uint, room models.Room) (RoomUpdate, error) {
	room.ID = 0
	if err := normalizeRoom(&room); err != nil {
		return RoomUpdate{}, err
	}

	var out RoomUpdate
	err := s.Store.UpdateProperty(ctx, propertyID, func(p models.Property, _ []models.Room) (repository.PropertyChange, error) {
		stats, err := AddRoom(p.Stats(), room.Status)
		if err != nil {
			return repository.PropertyChange{}, err
		}
		out.Stats = stats
		return repository.PropertyChange{NewRoom: &room, Stats: &out.Stats}, nil
	})
	if err != nil {
		return RoomUpdate{}, err
	}
	out.Room = room
	out.Transition = Transition{RoomID: room.ID, From: room.Status, To: room.Status}
	log.Printf("room %d (%s) created in property %d as %s", room.ID, room.RoomNumber, propertyID, room.Status)
	return out, nil
}

// update runs mutate on a locked copy of the room and commits the room plus
// the matching inventory delta.
func (s *RoomService) update(ctx context.Context, roomID uint, mutate func(*models.Room) (Transition, error)) (RoomUpdate, error) {
	var out RoomUpdate
	var property models.Property
	err := s.Store.UpdateRoom(ctx, roomID, func(room models.Room, p models.Property) (repository.RoomChange, error) {
		next := room
		t, err := mutate(&next)
		if err != nil {
			return repository.RoomChange{}, err
		}
		stats, err := ApplyTransition(p.Stats(), t.From, t.To)
		if err != nil {
			return repository.RoomChange{}, err
		}
		out = RoomUpdate{Room: next, Stats: stats, Transition: t}
		property = p
		change := repository.RoomChange{Room: &out.Room}
		if t.Changed() {
			change.Stats = &out.Stats
		}
		return change, nil
	})
	if err != nil {
		return RoomUpdate{}, err
	}

	if out.Transition.Changed() {
		log.Printf("room %d status %s -> %s (occupied %d/%d)", roomID, out.Transition.From, out.Transition.To, out.Room.Occupied, out.Room.Capacity)
		if out.Transition.To == models.RoomOccupied && s.Notifier != nil {
			evt := RoomOccupiedEvent{
				PropertyID:   property.ID,
				PropertyName: property.Name,
				OwnerEmail:   property.OwnerEmail,
				RoomID:       out.Room.ID,
				RoomNumber:   out.Room.RoomNumber,
				Floor:        out.Room.Floor,
			}
			if err := s.Notifier.RoomOccupied(ctx, evt); err != nil {
				log.Printf("warning: %v", err)
			}
		}
	}
	return out, nil
}

// ChangeStatus is the operator-driven status flip.
func (s *RoomService) ChangeStatus(ctx context.Context, roomID uint, rawStatus string) (RoomUpdate, error) {
	to, err := models.ParseRoomStatus(rawStatus)
	if err != nil {
		return RoomUpdate{}, reject(ReasonUnknownRoomStatus, "%v", err)
	}
	return s.update(ctx, roomID, func(r *models.Room) (Transition, error) {
		return TransitionRoom(r, to)
	})
}

func (s *RoomService) AssignOccupant(ctx context.Context, roomID uint) (RoomUpdate, error) {
	return s.update(ctx, roomID, AssignOccupant)
}

// VacateOccupant removes one tenant. When the last tenant leaves an occupied
// room it is handed back as available.
func (s *RoomService) VacateOccupant(ctx context.Context, roomID uint) (RoomUpdate, error) {
	return s.update(ctx, roomID, func(r *models.Room) (Transition, error) {
		if err := VacateOccupant(r); err != nil {
			return Transition{}, err
		}
		if r.Occupied == 0 && r.Status == models.RoomOccupied {
			return TransitionRoom(r, models.RoomAvailable)
		}
		return Transition{RoomID: r.ID, From: r.Status, To: r.Status}, nil
	})
}

// DeleteRoom removes a room that has no tenants and uncounts it.
func (s *RoomService) DeleteRoom(ctx context.Context, roomID uint) (models.InventoryStats, error) {
	var stats models.InventoryStats
	err := s.Store.UpdateRoom(ctx, roomID, func(room models.Room, p models.Property) (repository.RoomChange, error) {
		if err := CheckDeletable(room); err != nil {
			return repository.RoomChange{}, err
		}
		next, err := RemoveRoom(p.Stats(), room.Status)
		if err != nil {
			return repository.RoomChange{}, err
		}
		stats = next
		return repository.RoomChange{Delete: true, Stats: &stats}, nil
	})
	if err != nil {
		return models.InventoryStats{}, err
	}
	log.Printf("room %d deleted", roomID)
	return stats, nil
}
