package services

import (
	"math"
	"time"

	"rental-backend/models"
)

// DaysPerMonth is the fixed month length used for billing. Stays are not
// calendar-month aware.
const DaysPerMonth = 30

// StayQuote is the result of pricing one stay.
type StayQuote struct {
	DurationDays    int                  `json:"durationDays"`
	Months          int                  `json:"months"`
	ExtraDays       int                  `json:"extraDays"`
	Policy          models.BillingPolicy `json:"policy"`
	EffectivePolicy models.BillingPolicy `json:"effectivePolicy"`
	MonthlyRate     float64              `json:"monthlyRate"`
	DailyRate       float64              `json:"dailyRate"`
	TotalPrice      float64              `json:"totalPrice"`
}

// CalendarDate strips the time of day, keeping the date as seen in t's location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const secondsPerDay = 24 * 60 * 60

// StayDays returns the number of billable days between two calendar dates.
// It counts whole days from Unix seconds; a time.Duration caps at ~292 years.
func StayDays(start, end time.Time) int {
	return int((CalendarDate(end).Unix() - CalendarDate(start).Unix()) / secondsPerDay)
}

// roundCents rounds an amount to two decimal places, the precision of the
// money columns.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// EffectiveDailyRate falls back to round(monthly/30) when no positive daily
// rate is configured.
func EffectiveDailyRate(monthlyRate float64, dailyRate *float64) float64 {
	if dailyRate != nil && *dailyRate > 0 {
		return *dailyRate
	}
	return math.Round(monthlyRate / DaysPerMonth)
}

// ComputeStay prices a stay from start to end under the given billing policy.
func ComputeStay(policy models.BillingPolicy, monthlyRate float64, dailyRate *float64, start, end time.Time) (StayQuote, error) {
	switch policy {
	case models.BillingMonthly, models.BillingDaily, models.BillingMonthlyWithDaily:
	default:
		return StayQuote{}, ErrUnknownBillingPolicy
	}

	days := StayDays(start, end)
	if days <= 0 {
		return StayQuote{}, ErrNoValidDuration
	}

	q := StayQuote{
		DurationDays:    days,
		Months:          days / DaysPerMonth,
		ExtraDays:       days % DaysPerMonth,
		Policy:          policy,
		EffectivePolicy: policy,
		MonthlyRate:     monthlyRate,
		DailyRate:       EffectiveDailyRate(monthlyRate, dailyRate),
	}

	// a monthly room with a usable daily rate bills leftover days daily
	// instead of rounding them up to a whole month
	if policy == models.BillingMonthly && q.DailyRate > 0 && q.ExtraDays > 0 {
		q.EffectivePolicy = models.BillingMonthlyWithDaily
	}

	switch q.EffectivePolicy {
	case models.BillingMonthlyWithDaily:
		q.TotalPrice = float64(q.Months)*q.MonthlyRate + float64(q.ExtraDays)*q.DailyRate
	case models.BillingDaily:
		q.TotalPrice = float64(q.DurationDays) * q.DailyRate
	default:
		billedMonths := (q.DurationDays + DaysPerMonth - 1) / DaysPerMonth
		q.TotalPrice = float64(billedMonths) * q.MonthlyRate
	}
	q.TotalPrice = roundCents(q.TotalPrice)

	return q, nil
}

// PerPersonShare is the display-only split of a full-room charge. The billed
// total is never divided.
func PerPersonShare(total float64, model models.PricingModel, capacity int) float64 {
	if model == models.PricingFullRoom && capacity > 1 {
		return math.Round(total / float64(capacity))
	}
	return total
}
