package services

import "fmt"

// Reason identifies why the engine refused a request. Callers switch on it to
// build a specific user-facing message.
type Reason string

const (
	ReasonMissingDates               Reason = "MissingDates"
	ReasonCheckInInPast              Reason = "CheckInInPast"
	ReasonCheckInOutsideCurrentMonth Reason = "CheckInOutsideCurrentMonth"
	ReasonCheckOutBeforeCheckIn      Reason = "CheckOutBeforeCheckIn"
	ReasonRoomNotAvailable           Reason = "RoomNotAvailable"
	ReasonRoomHasActiveTenants       Reason = "RoomHasActiveTenants"
	ReasonInventoryDrift             Reason = "InventoryDrift"
	ReasonInvalidTransition          Reason = "InvalidTransition"
	ReasonRoomAtCapacity             Reason = "RoomAtCapacity"
	ReasonNoOccupants                Reason = "NoOccupants"
	ReasonInvalidRoomRate            Reason = "InvalidRoomRate"
	ReasonUnknownBillingPolicy       Reason = "UnknownBillingPolicy"
	ReasonUnknownPricingModel        Reason = "UnknownPricingModel"
	ReasonUnknownRoomStatus          Reason = "UnknownRoomStatus"
	ReasonNoValidDuration            Reason = "NoValidDuration"
)

// Rejection is the typed error returned for every expected refusal.
type Rejection struct {
	Reason  Reason
	Message string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Reason, r.Message)
}

// Is matches any Rejection carrying the same Reason, so errors.Is(err, ErrCheckInInPast)
// works regardless of the message.
func (r *Rejection) Is(target error) bool {
	t, ok := target.(*Rejection)
	return ok && t.Reason == r.Reason
}

func reject(reason Reason, format string, args ...any) *Rejection {
	return &Rejection{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrMissingDates               = &Rejection{Reason: ReasonMissingDates, Message: "check-in and check-out dates are required"}
	ErrCheckInInPast              = &Rejection{Reason: ReasonCheckInInPast, Message: "check-in date cannot be in the past"}
	ErrCheckInOutsideCurrentMonth = &Rejection{Reason: ReasonCheckInOutsideCurrentMonth, Message: "check-in date must fall within the current month"}
	ErrCheckOutBeforeCheckIn      = &Rejection{Reason: ReasonCheckOutBeforeCheckIn, Message: "check-out date must be after check-in date"}
	ErrRoomNotAvailable           = &Rejection{Reason: ReasonRoomNotAvailable, Message: "room is not available"}
	ErrRoomHasActiveTenants       = &Rejection{Reason: ReasonRoomHasActiveTenants, Message: "room still has active tenants"}
	ErrInventoryDrift             = &Rejection{Reason: ReasonInventoryDrift, Message: "inventory stats do not match the room's prior status"}
	ErrInvalidTransition          = &Rejection{Reason: ReasonInvalidTransition, Message: "room status transition is not allowed"}
	ErrRoomAtCapacity             = &Rejection{Reason: ReasonRoomAtCapacity, Message: "room is at full capacity"}
	ErrNoOccupants                = &Rejection{Reason: ReasonNoOccupants, Message: "room has no occupants to vacate"}
	ErrInvalidRoomRate            = &Rejection{Reason: ReasonInvalidRoomRate, Message: "room rates must be non-negative"}
	ErrUnknownBillingPolicy       = &Rejection{Reason: ReasonUnknownBillingPolicy, Message: "unrecognized billing policy"}
	ErrUnknownPricingModel        = &Rejection{Reason: ReasonUnknownPricingModel, Message: "unrecognized pricing model"}
	ErrUnknownRoomStatus          = &Rejection{Reason: ReasonUnknownRoomStatus, Message: "unrecognized room status"}
	ErrNoValidDuration            = &Rejection{Reason: ReasonNoValidDuration, Message: "stay has no valid duration"}
)
