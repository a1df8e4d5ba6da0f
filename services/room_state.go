package services

import (
	"rental-backend/models"
)

// Transition records a status change applied to a single room.
type Transition struct {
	RoomID uint              `json:"roomId"`
	From   models.RoomStatus `json:"from"`
	To     models.RoomStatus `json:"to"`
}

// Changed reports whether the room's status actually moved.
func (t Transition) Changed() bool { return t.From != t.To }

// roomTransitions lists the operator and system moves between statuses.
// occupied -> available is additionally gated on the occupant count.
var roomTransitions = map[models.RoomStatus][]models.RoomStatus{
	models.RoomAvailable:   {models.RoomOccupied, models.RoomMaintenance},
	models.RoomOccupied:    {models.RoomAvailable, models.RoomMaintenance},
	models.RoomMaintenance: {models.RoomAvailable, models.RoomOccupied},
}

func validRoomStatus(s models.RoomStatus) bool {
	_, ok := roomTransitions[s]
	return ok
}

// CanTransition reports whether from -> to is a legal edge of the room state
// machine, ignoring occupancy.
func CanTransition(from, to models.RoomStatus) bool {
	if !validRoomStatus(from) || !validRoomStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	for _, s := range roomTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TransitionRoom moves room to status to. The room is only modified on success.
func TransitionRoom(room *models.Room, to models.RoomStatus) (Transition, error) {
	from := room.Status
	if !validRoomStatus(from) || !validRoomStatus(to) {
		return Transition{}, reject(ReasonUnknownRoomStatus, "cannot move room %d from %q to %q", room.ID, from, to)
	}
	if !CanTransition(from, to) {
		return Transition{}, reject(ReasonInvalidTransition, "room %d cannot move from %s to %s", room.ID, from, to)
	}
	if from == models.RoomOccupied && to == models.RoomAvailable && room.Occupied > 0 {
		return Transition{}, reject(ReasonRoomHasActiveTenants, "room %d still has %d tenant(s); vacate them first", room.ID, room.Occupied)
	}

	room.Status = to
	return Transition{RoomID: room.ID, From: from, To: to}, nil
}

// AssignOccupant adds one tenant. An available room becomes occupied; a room
// under maintenance keeps its override.
func AssignOccupant(room *models.Room) (Transition, error) {
	if !validRoomStatus(room.Status) {
		return Transition{}, reject(ReasonUnknownRoomStatus, "room %d has unknown status %q", room.ID, room.Status)
	}
	if room.Occupied >= room.Capacity {
		return Transition{}, reject(ReasonRoomAtCapacity, "room %d is full (%d/%d)", room.ID, room.Occupied, room.Capacity)
	}

	t := Transition{RoomID: room.ID, From: room.Status, To: room.Status}
	if room.Status == models.RoomAvailable {
		t.To = models.RoomOccupied
	}
	room.Occupied++
	room.Status = t.To
	return t, nil
}

// VacateOccupant removes one tenant. Status is left alone; flipping an
// emptied room back to available is a separate TransitionRoom call.
func VacateOccupant(room *models.Room) error {
	if room.Occupied <= 0 {
		return reject(ReasonNoOccupants, "room %d has no occupants", room.ID)
	}
	room.Occupied--
	return nil
}

// CheckDeletable blocks removal of a room that still houses tenants.
func CheckDeletable(room models.Room) error {
	if room.Occupied > 0 {
		return reject(ReasonRoomHasActiveTenants, "cannot delete room %d with %d active tenant(s)", room.ID, room.Occupied)
	}
	return nil
}

// CheckRoomConsistency verifies the status/occupancy coupling. occupied with
// zero tenants is tolerated as a manual override.
func CheckRoomConsistency(room models.Room) error {
	if !validRoomStatus(room.Status) {
		return reject(ReasonUnknownRoomStatus, "room %d has unknown status %q", room.ID, room.Status)
	}
	if room.Capacity <= 0 {
		return reject(ReasonRoomAtCapacity, "room %d has non-positive capacity %d", room.ID, room.Capacity)
	}
	if room.Occupied < 0 || room.Occupied > room.Capacity {
		return reject(ReasonRoomAtCapacity, "room %d occupancy %d outside [0, %d]", room.ID, room.Occupied, room.Capacity)
	}
	if room.Status == models.RoomAvailable && room.Occupied > 0 {
		return reject(ReasonRoomHasActiveTenants, "room %d is available but has %d tenant(s)", room.ID, room.Occupied)
	}
	return nil
}
