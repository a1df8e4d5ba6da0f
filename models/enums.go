package models

import (
	"fmt"
	"strings"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

type BillingPolicy string

const (
	BillingMonthly          BillingPolicy = "monthly"
	BillingDaily            BillingPolicy = "daily"
	BillingMonthlyWithDaily BillingPolicy = "monthly_with_daily"
)

type PricingModel string

const (
	PricingFullRoom PricingModel = "full_room"
	PricingPerBed   PricingModel = "per_bed"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// normalizeEnum folds "Monthly-With Daily " into "monthly_with_daily".
func normalizeEnum(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return s
}

func ParseRoomStatus(raw string) (RoomStatus, error) {
	switch s := RoomStatus(normalizeEnum(raw)); s {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return s, nil
	}
	return "", fmt.Errorf("unknown room status %q", raw)
}

func ParseBillingPolicy(raw string) (BillingPolicy, error) {
	switch p := BillingPolicy(normalizeEnum(raw)); p {
	case BillingMonthly, BillingDaily, BillingMonthlyWithDaily:
		return p, nil
	}
	return "", fmt.Errorf("unknown billing policy %q", raw)
}

func ParsePricingModel(raw string) (PricingModel, error) {
	switch m := PricingModel(normalizeEnum(raw)); m {
	case PricingFullRoom, PricingPerBed:
		return m, nil
	}
	return "", fmt.Errorf("unknown pricing model %q", raw)
}

func ParseBookingStatus(raw string) (BookingStatus, error) {
	switch s := BookingStatus(normalizeEnum(raw)); s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return s, nil
	}
	return "", fmt.Errorf("unknown booking status %q", raw)
}
