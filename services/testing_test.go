package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"rental-backend/models"
	"rental-backend/repository"
)

// fakeNotifier records every event it is handed.
type fakeNotifier struct {
	mu     sync.Mutex
	Events []RoomOccupiedEvent
	Err    error
}

func (f *fakeNotifier) RoomOccupied(ctx context.Context, evt RoomOccupiedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Events = append(f.Events, evt)
	return f.Err
}

func (f *fakeNotifier) calls() []RoomOccupiedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RoomOccupiedEvent(nil), f.Events...)
}

type fixture struct {
	store    *repository.MemoryStore
	notifier *fakeNotifier
	props    *PropertyService
	rooms    *RoomService
	bookings *BookingService
	property models.Property
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{store: repository.NewMemoryStore(), notifier: &fakeNotifier{}}
	f.props = NewPropertyService(f.store)
	f.rooms = NewRoomService(f.store, f.notifier)
	f.bookings = NewBookingService(f.store, f.notifier, time.UTC)
	f.bookings.Now = func() time.Time { return engineToday }

	f.property = models.Property{Name: "Lakeview", OwnerEmail: "owner@example.com"}
	if err := f.props.Create(context.Background(), &f.property); err != nil {
		t.Fatalf("create property: %v", err)
	}
	return f
}

func (f *fixture) addRoom(t *testing.T, room models.Room) models.Room {
	t.Helper()
	out, err := f.rooms.CreateRoom(context.Background(), f.property.ID, room)
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	return out.Room
}

func (f *fixture) stats(t *testing.T) models.InventoryStats {
	t.Helper()
	s, err := f.props.Stats(context.Background(), f.property.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	return s
}

func (f *fixture) room(t *testing.T, id uint) models.Room {
	t.Helper()
	r, err := f.rooms.GetRoom(context.Background(), id)
	if err != nil {
		t.Fatalf("get room: %v", err)
	}
	return r
}

func stayOf(days int) BookingRequest {
	return BookingRequest{StartDate: ptr(engineToday), EndDate: ptr(engineToday.AddDate(0, 0, days))}
}
