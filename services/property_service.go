package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"rental-backend/models"
	"rental-backend/repository"
)

type PropertyService struct {
	Store repository.Store
}

func NewPropertyService(store repository.Store) *PropertyService {
	return &PropertyService{Store: store}
}

// Create registers an empty property. Rooms are added one at a time so the
// stats stay incremental from the start.
func (s *PropertyService) Create(ctx context.Context, p *models.Property) error {
	p.ID = 0
	p.Name = strings.TrimSpace(p.Name)
	p.OwnerEmail = strings.TrimSpace(p.OwnerEmail)
	if p.Name == "" {
		return fmt.Errorf("validation: property name is required")
	}
	p.Rooms = nil
	p.SetStats(models.InventoryStats{})
	return s.Store.CreateProperty(ctx, p)
}

func (s *PropertyService) Get(ctx context.Context, id uint) (models.Property, error) {
	return s.Store.GetProperty(ctx, id)
}

// Stats returns the cached counters without scanning rooms.
func (s *PropertyService) Stats(ctx context.Context, id uint) (models.InventoryStats, error) {
	p, err := s.Store.GetProperty(ctx, id)
	if err != nil {
		return models.InventoryStats{}, err
	}
	return p.Stats(), nil
}

// Recount rebuilds the cached stats from the property's rooms. It exists to
// repair drift left by earlier bugs and is never called per request.
func (s *PropertyService) Recount(ctx context.Context, id uint) (before, after models.InventoryStats, err error) {
	err = s.Store.UpdateProperty(ctx, id, func(p models.Property, rooms []models.Room) (repository.PropertyChange, error) {
		fresh, err := Recount(rooms)
		if err != nil {
			return repository.PropertyChange{}, err
		}
		before, after = p.Stats(), fresh
		return repository.PropertyChange{Stats: &after}, nil
	})
	if err != nil {
		return models.InventoryStats{}, models.InventoryStats{}, err
	}
	if before != after {
		log.Printf("warning: property %d stats drifted %+v -> %+v", id, before, after)
	}
	return before, after, nil
}
