package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"rental-backend/models"
)

// keyedMutex hands out one mutex per id.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func (k *keyedMutex) lock(id uint) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[uint]*sync.Mutex)
	}
	m, ok := k.locks[id]
	if !ok {
		m = &sync.Mutex{}
		k.locks[id] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// MemoryStore keeps everything in process. Used for local runs without MySQL
// and by tests. UpdateRoom holds a per-room lock, then a per-property lock.
type MemoryStore struct {
	mu         sync.RWMutex
	properties map[uint]models.Property
	rooms      map[uint]models.Room
	bookings   map[uint]models.Booking
	lastID     uint

	roomLocks     keyedMutex
	propertyLocks keyedMutex

	// CommitError, when set, fails every write after the update func ran.
	CommitError error
	// Commits counts successful UpdateRoom/UpdateProperty writes.
	Commits int
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		properties: make(map[uint]models.Property),
		rooms:      make(map[uint]models.Room),
		bookings:   make(map[uint]models.Booking),
	}
}

func (s *MemoryStore) nextID() uint {
	s.lastID++
	return s.lastID
}

// SeedRoom inserts room as-is under an existing property without touching the
// property's stats. Tests use it to build drifted or hand-crafted states.
func (s *MemoryStore) SeedRoom(room *models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.properties[room.PropertyID]; !ok {
		return fmt.Errorf("property %d: %w", room.PropertyID, ErrNotFound)
	}
	if room.ID == 0 {
		room.ID = s.nextID()
	} else if room.ID > s.lastID {
		s.lastID = room.ID
	}
	s.rooms[room.ID] = *room
	return nil
}

func (s *MemoryStore) CreateProperty(ctx context.Context, property *models.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	property.ID = s.nextID()
	property.CreatedAt, property.UpdatedAt = now, now
	p := *property
	p.Rooms = nil
	s.properties[p.ID] = p
	return nil
}

func (s *MemoryStore) roomsOf(propertyID uint) []models.Room {
	rooms := []models.Room{}
	for _, r := range s.rooms {
		if r.PropertyID == propertyID {
			rooms = append(rooms, r)
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms
}

func (s *MemoryStore) GetProperty(ctx context.Context, id uint) (models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.properties[id]
	if !ok {
		return models.Property{}, fmt.Errorf("property %d: %w", id, ErrNotFound)
	}
	p.Rooms = s.roomsOf(id)
	return p, nil
}

func (s *MemoryStore) GetRoom(ctx context.Context, id uint) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[id]
	if !ok {
		return models.Room{}, fmt.Errorf("room %d: %w", id, ErrNotFound)
	}
	return r, nil
}

func (s *MemoryStore) GetBooking(ctx context.Context, id uint) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, fmt.Errorf("booking %d: %w", id, ErrNotFound)
	}
	b.Room = s.rooms[b.RoomID]
	return b, nil
}

func (s *MemoryStore) ListRoomBookings(ctx context.Context, roomID uint) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := []models.Booking{}
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			list = append(list, b)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (s *MemoryStore) UpdateRoom(ctx context.Context, roomID uint, fn RoomUpdateFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlockRoom := s.roomLocks.lock(roomID)
	defer unlockRoom()

	room, err := s.GetRoom(ctx, roomID)
	if err != nil {
		return err
	}

	unlockProperty := s.propertyLocks.lock(room.PropertyID)
	defer unlockProperty()

	s.mu.RLock()
	property, ok := s.properties[room.PropertyID]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("property %d: %w", room.PropertyID, ErrNotFound)
	}

	change, err := fn(room, property)
	if err != nil {
		return err
	}
	if s.CommitError != nil {
		return s.CommitError
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	if change.Booking != nil {
		change.Booking.ID = s.nextID()
		change.Booking.CreatedAt, change.Booking.UpdatedAt = now, now
		b := *change.Booking
		b.Room = models.Room{}
		s.bookings[b.ID] = b
	}
	if change.Delete {
		delete(s.rooms, room.ID)
	} else if change.Room != nil {
		room.Status = change.Room.Status
		room.Occupied = change.Room.Occupied
		room.UpdatedAt = now
		s.rooms[room.ID] = room
	}
	if change.Stats != nil {
		property.SetStats(*change.Stats)
		property.UpdatedAt = now
		s.properties[property.ID] = property
	}
	s.Commits++
	return nil
}

func (s *MemoryStore) UpdateProperty(ctx context.Context, propertyID uint, fn PropertyUpdateFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := s.propertyLocks.lock(propertyID)
	defer unlock()

	s.mu.RLock()
	property, ok := s.properties[propertyID]
	rooms := s.roomsOf(propertyID)
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("property %d: %w", propertyID, ErrNotFound)
	}

	change, err := fn(property, rooms)
	if err != nil {
		return err
	}
	if s.CommitError != nil {
		return s.CommitError
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	if change.NewRoom != nil {
		change.NewRoom.ID = s.nextID()
		change.NewRoom.PropertyID = propertyID
		change.NewRoom.CreatedAt, change.NewRoom.UpdatedAt = now, now
		s.rooms[change.NewRoom.ID] = *change.NewRoom
	}
	if change.Stats != nil {
		property.SetStats(*change.Stats)
		property.UpdatedAt = now
		s.properties[propertyID] = property
	}
	s.Commits++
	return nil
}
