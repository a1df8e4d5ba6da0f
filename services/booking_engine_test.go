package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"rental-backend/models"
)

var engineToday = time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)

func TestSubmitBooking_EndToEnd(t *testing.T) {
	room := availableRoom()
	stats := models.InventoryStats{Total: 3, Available: 2, Occupied: 1}
	req := BookingRequest{
		RoomID:    room.ID,
		StartDate: ptr(engineToday),
		EndDate:   ptr(engineToday.AddDate(0, 0, 45)),
		Notes:     "two students",
	}

	res, err := SubmitBooking(room, stats, req, engineToday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := res.Quote
	if q.EffectivePolicy != models.BillingMonthlyWithDaily || q.DailyRate != 267 {
		t.Errorf("expected monthly_with_daily at 267/day, got %s at %v", q.EffectivePolicy, q.DailyRate)
	}
	if q.Months != 1 || q.ExtraDays != 15 || q.TotalPrice != 12005 {
		t.Errorf("expected 1 month + 15 days = 12005, got %+v", q)
	}

	if res.Room.Status != models.RoomOccupied || res.Room.Occupied != 1 {
		t.Errorf("expected room occupied with 1 tenant, got %+v", res.Room)
	}
	wantStats := models.InventoryStats{Total: 3, Available: 1, Occupied: 2}
	if res.Stats != wantStats {
		t.Errorf("expected stats %+v, got %+v", wantStats, res.Stats)
	}
	if res.Transition != (Transition{RoomID: room.ID, From: models.RoomAvailable, To: models.RoomOccupied}) {
		t.Errorf("unexpected transition %+v", res.Transition)
	}

	b := res.Booking
	if b.Status != models.BookingPending || b.RoomID != room.ID || b.TotalPrice != 12005 || b.Notes != "two students" {
		t.Errorf("unexpected booking %+v", b)
	}
	if !b.StartDate.Equal(day(2026, time.October, 15)) || !b.EndDate.Equal(day(2026, time.November, 29)) {
		t.Errorf("expected calendar dates, got %s..%s", b.StartDate, b.EndDate)
	}

	var stored StayQuote
	if err := json.Unmarshal(b.Quote, &stored); err != nil {
		t.Fatalf("quote snapshot is not valid JSON: %v", err)
	}
	if stored != q {
		t.Errorf("quote snapshot %+v differs from %+v", stored, q)
	}

	if res.PerPersonShare != 6003 {
		t.Errorf("expected per-person share 6003, got %v", res.PerPersonShare)
	}

	if room.Status != models.RoomAvailable || room.Occupied != 0 {
		t.Errorf("input room was mutated: %+v", room)
	}
	if stats != (models.InventoryStats{Total: 3, Available: 2, Occupied: 1}) {
		t.Errorf("input stats were mutated: %+v", stats)
	}
}

func TestSubmitBooking_PricesCenturiesLongStay(t *testing.T) {
	room := availableRoom()
	room.BillingPolicy = models.BillingDaily
	room.DailyRate = rate(300)
	stats := models.InventoryStats{Total: 1, Available: 1}
	req := BookingRequest{RoomID: room.ID, StartDate: ptr(engineToday), EndDate: ptr(day(2400, time.January, 1))}

	res, err := SubmitBooking(room, stats, req, engineToday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Quote.DurationDays != 136313 || res.Booking.TotalPrice != 136313*300 {
		t.Errorf("expected 136313 days billed at 300, got %d days total %v", res.Quote.DurationDays, res.Booking.TotalPrice)
	}
}

func TestSubmitBooking_Rejections(t *testing.T) {
	full := availableRoom()
	full.Capacity = 1
	full.Occupied = 1

	occupied := availableRoom()
	occupied.Status = models.RoomOccupied
	occupied.Occupied = 1

	stats := models.InventoryStats{Total: 1, Available: 1}
	drifted := models.InventoryStats{Total: 1, Occupied: 1}

	start, end := ptr(engineToday), ptr(engineToday.AddDate(0, 0, 30))

	tests := []struct {
		name  string
		room  models.Room
		stats models.InventoryStats
		req   BookingRequest
		want  error
	}{
		{"missing dates", availableRoom(), stats, BookingRequest{RoomID: 1}, ErrMissingDates},
		{"past check-in", availableRoom(), stats, BookingRequest{RoomID: 1, StartDate: ptr(engineToday.AddDate(0, 0, -1)), EndDate: end}, ErrCheckInInPast},
		{"occupied room", occupied, stats, BookingRequest{RoomID: 1, StartDate: start, EndDate: end}, ErrRoomNotAvailable},
		{"room already full", full, stats, BookingRequest{RoomID: 1, StartDate: start, EndDate: end}, ErrRoomNotAvailable},
		{"stats drifted", availableRoom(), drifted, BookingRequest{RoomID: 1, StartDate: start, EndDate: end}, ErrInventoryDrift},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room, stats := tt.room, tt.stats
			res, err := SubmitBooking(room, stats, tt.req, engineToday)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if res.Booking.TotalPrice != 0 || res.Room.ID != 0 {
				t.Errorf("expected empty result on rejection, got %+v", res)
			}
			if room != tt.room || stats != tt.stats {
				t.Errorf("inputs changed on rejection")
			}
		})
	}
}

func TestDeletionGuard(t *testing.T) {
	room := availableRoom()
	room.Status = models.RoomOccupied
	room.Occupied = 1
	before := room

	if err := CheckDeletable(room); !errors.Is(err, ErrRoomHasActiveTenants) {
		t.Fatalf("expected RoomHasActiveTenants, got %v", err)
	}
	if room != before {
		t.Errorf("room changed: %+v", room)
	}
}
