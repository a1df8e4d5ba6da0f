// services/booking_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"rental-backend/models"
	"rental-backend/repository"

	"github.com/google/uuid"
)

// BookingService is the caller side of the engine: it owns the store,
// serializes per room through it, and fires notifications after commit.
type BookingService struct {
	Store    repository.Store
	Notifier Notifier
	Location *time.Location
	Now      func() time.Time
}

func NewBookingService(store repository.Store, notifier Notifier, loc *time.Location) *BookingService {
	if loc == nil {
		loc = time.Local
	}
	return &BookingService{Store: store, Notifier: notifier, Location: loc, Now: time.Now}
}

// Today is the current date in the service's booking timezone.
func (s *BookingService) Today() time.Time {
	return s.Now().In(s.Location)
}

// Submit validates, prices and commits a booking as one unit. A rejection
// leaves the room, the property stats and the booking table untouched.
func (s *BookingService) Submit(ctx context.Context, req BookingRequest) (BookingResult, error) {
	today := s.Today()

	var result BookingResult
	var property models.Property
	err := s.Store.UpdateRoom(ctx, req.RoomID, func(room models.Room, p models.Property) (repository.RoomChange, error) {
		r, err := SubmitBooking(room, p.Stats(), req, today)
		if err != nil {
			return repository.RoomChange{}, err
		}
		r.Booking.ReferenceCode = uuid.NewString()
		result, property = r, p
		return repository.RoomChange{
			Room:    &result.Room,
			Stats:   &result.Stats,
			Booking: &result.Booking,
		}, nil
	})
	if err != nil {
		var rej *Rejection
		if errors.As(err, &rej) {
			log.Printf("booking for room %d rejected: %v", req.RoomID, rej)
		} else {
			log.Printf("❌ booking for room %d failed: %v", req.RoomID, err)
		}
		return BookingResult{}, err
	}

	log.Printf("✅ booking %d (%s) room %d %s -> %s total=%.2f",
		result.Booking.ID, result.Booking.ReferenceCode, result.Room.ID,
		result.Transition.From, result.Transition.To, result.Booking.TotalPrice)

	if result.Transition.Changed() && result.Transition.To == models.RoomOccupied {
		s.notify(ctx, RoomOccupiedEvent{
			PropertyID:    property.ID,
			PropertyName:  property.Name,
			OwnerEmail:    property.OwnerEmail,
			RoomID:        result.Room.ID,
			RoomNumber:    result.Room.RoomNumber,
			Floor:         result.Room.Floor,
			BookingID:     result.Booking.ID,
			ReferenceCode: result.Booking.ReferenceCode,
			StartDate:     result.Booking.StartDate,
			EndDate:       result.Booking.EndDate,
			TotalPrice:    result.Booking.TotalPrice,
			Notes:         result.Booking.Notes,
		})
	}
	return result, nil
}

func (s *BookingService) notify(ctx context.Context, evt RoomOccupiedEvent) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.RoomOccupied(ctx, evt); err != nil {
		log.Printf("warning: %v", err)
	}
}

// RoomQuote is a price preview for a room; nothing is held or written.
type RoomQuote struct {
	Room           models.Room         `json:"room"`
	Quote          StayQuote           `json:"quote"`
	PricingModel   models.PricingModel `json:"pricingModel"`
	PerPersonShare float64             `json:"perPersonShare"`
}

func (s *BookingService) Quote(ctx context.Context, roomID uint, start, end *time.Time) (RoomQuote, error) {
	if start == nil || end == nil {
		return RoomQuote{}, ErrMissingDates
	}
	room, err := s.Store.GetRoom(ctx, roomID)
	if err != nil {
		return RoomQuote{}, err
	}
	policy, model, err := RoomPricing(room)
	if err != nil {
		return RoomQuote{}, err
	}
	q, err := ComputeStay(policy, room.MonthlyRate, room.DailyRate, *start, *end)
	if err != nil {
		return RoomQuote{}, err
	}
	return RoomQuote{
		Room:           room,
		Quote:          q,
		PricingModel:   model,
		PerPersonShare: PerPersonShare(q.TotalPrice, model, room.Capacity),
	}, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id uint) (models.Booking, error) {
	b, err := s.Store.GetBooking(ctx, id)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return b, nil
}

func (s *BookingService) ListRoomBookings(ctx context.Context, roomID uint) ([]models.Booking, error) {
	if _, err := s.Store.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}
	return s.Store.ListRoomBookings(ctx, roomID)
}
