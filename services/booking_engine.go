package services

import (
	"encoding/json"
	"fmt"
	"time"

	"rental-backend/models"

	"gorm.io/datatypes"
)

type BookingRequest struct {
	RoomID    uint
	StartDate *time.Time
	EndDate   *time.Time
	Notes     string
}

// BookingResult is everything a successful submission changes. It is only
// ever returned whole.
type BookingResult struct {
	Booking        models.Booking        `json:"booking"`
	Room           models.Room           `json:"room"`
	Stats          models.InventoryStats `json:"stats"`
	Quote          StayQuote             `json:"quote"`
	Transition     Transition            `json:"transition"`
	PerPersonShare float64               `json:"perPersonShare"`
}

// SubmitBooking validates, prices and applies a booking against a room
// snapshot and its property's stats. The room is held as occupied while the
// booking is pending landlord approval. Inputs are never mutated; on error
// nothing has changed.
func SubmitBooking(room models.Room, stats models.InventoryStats, req BookingRequest, today time.Time) (BookingResult, error) {
	if err := ValidateBookingRequest(room, req.StartDate, req.EndDate, today); err != nil {
		return BookingResult{}, err
	}
	policy, model, err := RoomPricing(room)
	if err != nil {
		return BookingResult{}, err
	}

	quote, err := ComputeStay(policy, room.MonthlyRate, room.DailyRate, *req.StartDate, *req.EndDate)
	if err != nil {
		return BookingResult{}, err
	}

	if room.Occupied >= room.Capacity {
		return BookingResult{}, reject(ReasonRoomNotAvailable, "room %d is full (%d/%d)", room.ID, room.Occupied, room.Capacity)
	}

	updated := room
	t, err := AssignOccupant(&updated)
	if err != nil {
		return BookingResult{}, err
	}
	nextStats, err := ApplyTransition(stats, t.From, t.To)
	if err != nil {
		return BookingResult{}, err
	}

	raw, err := json.Marshal(quote)
	if err != nil {
		return BookingResult{}, fmt.Errorf("encode quote: %w", err)
	}

	booking := models.Booking{
		RoomID:     room.ID,
		StartDate:  CalendarDate(*req.StartDate),
		EndDate:    CalendarDate(*req.EndDate),
		TotalPrice: quote.TotalPrice,
		Status:     models.BookingPending,
		Notes:      req.Notes,
		Quote:      datatypes.JSON(raw),
	}

	return BookingResult{
		Booking:        booking,
		Room:           updated,
		Stats:          nextStats,
		Quote:          quote,
		Transition:     t,
		PerPersonShare: PerPersonShare(quote.TotalPrice, model, room.Capacity),
	}, nil
}
