package services

import (
	"math"
	"time"

	"rental-backend/models"
)

// LastDayOfMonth returns the final calendar date of t's month.
func LastDayOfMonth(t time.Time) time.Time {
	d := CalendarDate(t)
	return time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

// ValidateBookingRequest checks a submission before any pricing or state
// change. The first failing rule wins.
func ValidateBookingRequest(room models.Room, start, end *time.Time, today time.Time) error {
	if start == nil || end == nil || start.IsZero() || end.IsZero() {
		return ErrMissingDates
	}

	checkIn, checkOut, day := CalendarDate(*start), CalendarDate(*end), CalendarDate(today)

	if checkIn.Before(day) {
		return reject(ReasonCheckInInPast, "check-in %s is before today %s", checkIn.Format("2006-01-02"), day.Format("2006-01-02"))
	}
	if last := LastDayOfMonth(today); checkIn.After(last) {
		return reject(ReasonCheckInOutsideCurrentMonth, "check-in %s must be on or before %s", checkIn.Format("2006-01-02"), last.Format("2006-01-02"))
	}
	if !checkOut.After(checkIn) {
		return reject(ReasonCheckOutBeforeCheckIn, "check-out %s must be after check-in %s", checkOut.Format("2006-01-02"), checkIn.Format("2006-01-02"))
	}
	if room.Status != models.RoomAvailable {
		return reject(ReasonRoomNotAvailable, "room %d is %s", room.ID, room.Status)
	}

	if _, _, err := RoomPricing(room); err != nil {
		return err
	}
	return nil
}

// RoomPricing normalizes the room's billing settings and rejects rates the
// calculator must never see.
func RoomPricing(room models.Room) (models.BillingPolicy, models.PricingModel, error) {
	if badRate(room.MonthlyRate) || (room.DailyRate != nil && badRate(*room.DailyRate)) {
		return "", "", reject(ReasonInvalidRoomRate, "room %d has an invalid rate", room.ID)
	}
	policy, err := models.ParseBillingPolicy(string(room.BillingPolicy))
	if err != nil {
		return "", "", reject(ReasonUnknownBillingPolicy, "room %d: %v", room.ID, err)
	}
	model, err := models.ParsePricingModel(string(room.PricingModel))
	if err != nil {
		return "", "", reject(ReasonUnknownPricingModel, "room %d: %v", room.ID, err)
	}
	return policy, model, nil
}

func badRate(v float64) bool {
	return v < 0 || math.IsNaN(v) || math.IsInf(v, 0)
}
