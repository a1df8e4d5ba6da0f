package services

import (
	"errors"
	"testing"

	"rental-backend/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.RoomStatus
		want     bool
	}{
		{models.RoomAvailable, models.RoomOccupied, true},
		{models.RoomAvailable, models.RoomMaintenance, true},
		{models.RoomOccupied, models.RoomAvailable, true},
		{models.RoomOccupied, models.RoomMaintenance, true},
		{models.RoomMaintenance, models.RoomAvailable, true},
		{models.RoomMaintenance, models.RoomOccupied, true},
		{models.RoomAvailable, models.RoomAvailable, true},
		{models.RoomAvailable, "reserved", false},
		{"", models.RoomOccupied, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("%q -> %q: expected %v, got %v", tt.from, tt.to, tt.want, got)
		}
	}
}

func TestTransitionRoom_OccupiedToAvailableNeedsEmptyRoom(t *testing.T) {
	room := models.Room{Capacity: 2, Occupied: 1, Status: models.RoomOccupied}
	room.ID = 7

	_, err := TransitionRoom(&room, models.RoomAvailable)
	if !errors.Is(err, ErrRoomHasActiveTenants) {
		t.Fatalf("expected RoomHasActiveTenants, got %v", err)
	}
	if room.Status != models.RoomOccupied || room.Occupied != 1 {
		t.Errorf("room changed on rejection: %+v", room)
	}

	room.Occupied = 0
	tr, err := TransitionRoom(&room, models.RoomAvailable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr != (Transition{RoomID: 7, From: models.RoomOccupied, To: models.RoomAvailable}) {
		t.Errorf("unexpected transition %+v", tr)
	}
	if room.Status != models.RoomAvailable {
		t.Errorf("expected available, got %s", room.Status)
	}
}

func TestTransitionRoom_MaintenanceOverridesOccupancy(t *testing.T) {
	room := models.Room{Capacity: 2, Occupied: 2, Status: models.RoomOccupied}
	tr, err := TransitionRoom(&room, models.RoomMaintenance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tr.Changed() || room.Status != models.RoomMaintenance || room.Occupied != 2 {
		t.Errorf("unexpected result %+v / %+v", tr, room)
	}
}

func TestTransitionRoom_UnknownStatus(t *testing.T) {
	room := models.Room{Capacity: 1, Status: models.RoomAvailable}
	if _, err := TransitionRoom(&room, "reserved"); !errors.Is(err, ErrUnknownRoomStatus) {
		t.Errorf("expected UnknownRoomStatus, got %v", err)
	}
	if room.Status != models.RoomAvailable {
		t.Errorf("room changed on rejection: %s", room.Status)
	}
}

func TestAssignOccupant(t *testing.T) {
	room := models.Room{Capacity: 2, Status: models.RoomAvailable}

	tr, err := AssignOccupant(&room)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.From != models.RoomAvailable || tr.To != models.RoomOccupied || room.Occupied != 1 {
		t.Errorf("first tenant: got %+v / %+v", tr, room)
	}

	tr, err = AssignOccupant(&room)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Changed() || room.Occupied != 2 {
		t.Errorf("second tenant: got %+v / %+v", tr, room)
	}

	if _, err := AssignOccupant(&room); !errors.Is(err, ErrRoomAtCapacity) {
		t.Errorf("expected RoomAtCapacity, got %v", err)
	}
	if room.Occupied != 2 {
		t.Errorf("occupancy changed on rejection: %d", room.Occupied)
	}
}

func TestAssignOccupant_KeepsMaintenance(t *testing.T) {
	room := models.Room{Capacity: 1, Status: models.RoomMaintenance}
	tr, err := AssignOccupant(&room)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Changed() || room.Status != models.RoomMaintenance || room.Occupied != 1 {
		t.Errorf("unexpected result %+v / %+v", tr, room)
	}
}

func TestVacateOccupant(t *testing.T) {
	room := models.Room{Capacity: 1, Occupied: 1, Status: models.RoomOccupied}
	if err := VacateOccupant(&room); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Occupied != 0 || room.Status != models.RoomOccupied {
		t.Errorf("vacate must only touch the count: %+v", room)
	}
	if err := VacateOccupant(&room); !errors.Is(err, ErrNoOccupants) {
		t.Errorf("expected NoOccupants, got %v", err)
	}
}

func TestCheckDeletable(t *testing.T) {
	room := models.Room{Capacity: 2, Occupied: 1, Status: models.RoomOccupied}
	before := room
	if err := CheckDeletable(room); !errors.Is(err, ErrRoomHasActiveTenants) {
		t.Errorf("expected RoomHasActiveTenants, got %v", err)
	}
	if room != before {
		t.Errorf("room changed: %+v", room)
	}

	room.Occupied = 0
	if err := CheckDeletable(room); err != nil {
		t.Errorf("empty room should be deletable: %v", err)
	}
}

func TestCheckRoomConsistency(t *testing.T) {
	tests := []struct {
		name string
		room models.Room
		want error
	}{
		{"empty available", models.Room{Capacity: 2, Status: models.RoomAvailable}, nil},
		{"occupied with tenants", models.Room{Capacity: 2, Occupied: 1, Status: models.RoomOccupied}, nil},
		{"occupied override without tenants", models.Room{Capacity: 2, Status: models.RoomOccupied}, nil},
		{"maintenance with tenants", models.Room{Capacity: 2, Occupied: 2, Status: models.RoomMaintenance}, nil},
		{"available with tenants", models.Room{Capacity: 2, Occupied: 1, Status: models.RoomAvailable}, ErrRoomHasActiveTenants},
		{"over capacity", models.Room{Capacity: 1, Occupied: 2, Status: models.RoomOccupied}, ErrRoomAtCapacity},
		{"zero capacity", models.Room{Status: models.RoomAvailable}, ErrRoomAtCapacity},
		{"unknown status", models.Room{Capacity: 1, Status: "closed"}, ErrUnknownRoomStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRoomConsistency(tt.room)
			if tt.want == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
