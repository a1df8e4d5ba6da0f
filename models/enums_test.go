package models

import "testing"

func TestParseEnums(t *testing.T) {
	if s, err := ParseRoomStatus(" Maintenance "); err != nil || s != RoomMaintenance {
		t.Errorf("room status: got %q, %v", s, err)
	}
	if p, err := ParseBillingPolicy("monthly-with-daily"); err != nil || p != BillingMonthlyWithDaily {
		t.Errorf("billing policy: got %q, %v", p, err)
	}
	if p, err := ParseBillingPolicy("Monthly  With Daily"); err != nil || p != BillingMonthlyWithDaily {
		t.Errorf("billing policy with double space: got %q, %v", p, err)
	}
	if m, err := ParsePricingModel("FULL ROOM"); err != nil || m != PricingFullRoom {
		t.Errorf("pricing model: got %q, %v", m, err)
	}
	if s, err := ParseBookingStatus("Cancelled"); err != nil || s != BookingCancelled {
		t.Errorf("booking status: got %q, %v", s, err)
	}

	for _, raw := range []string{"", "reserved", "occupied!"} {
		if _, err := ParseRoomStatus(raw); err == nil {
			t.Errorf("expected error for room status %q", raw)
		}
	}
	if _, err := ParseBillingPolicy("weekly"); err == nil {
		t.Error("expected error for weekly billing")
	}
}

func TestPropertyStatsRoundTrip(t *testing.T) {
	var p Property
	want := InventoryStats{Total: 4, Available: 2, Occupied: 1, Maintenance: 1}
	p.SetStats(want)
	if got := p.Stats(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
