package config

import (
	"context"
	"log"

	"rental-backend/models"
	"rental-backend/services"
)

const demoOwnerEmail = "owner@rentals.local"

func ratePtr(v float64) *float64 { return &v }

// SeedDemoData creates one property with a handful of rooms through the same
// services the API uses, so the seeded stats are built incrementally.
func SeedDemoData(ctx context.Context, props *services.PropertyService, rooms *services.RoomService) error {
	p := models.Property{
		Name:       "Demo Residences",
		Address:    "1 Sample Street",
		OwnerEmail: demoOwnerEmail,
	}
	if err := props.Create(ctx, &p); err != nil {
		return err
	}

	demo := []models.Room{
		{RoomNumber: "101", Floor: "1", Capacity: 2, PricingModel: models.PricingFullRoom, MonthlyRate: 8000, BillingPolicy: models.BillingMonthly},
		{RoomNumber: "102", Floor: "1", Capacity: 4, PricingModel: models.PricingPerBed, MonthlyRate: 3500, DailyRate: ratePtr(150), BillingPolicy: models.BillingMonthlyWithDaily},
		{RoomNumber: "201", Floor: "2", Capacity: 1, PricingModel: models.PricingFullRoom, MonthlyRate: 6000, DailyRate: ratePtr(300), BillingPolicy: models.BillingDaily},
		{RoomNumber: "202", Floor: "2", Capacity: 2, PricingModel: models.PricingFullRoom, MonthlyRate: 7000, BillingPolicy: models.BillingMonthly, Status: models.RoomMaintenance},
	}
	for _, r := range demo {
		if _, err := rooms.CreateRoom(ctx, p.ID, r); err != nil {
			return err
		}
	}

	log.Printf("Demo property %d seeded with %d rooms", p.ID, len(demo))
	return nil
}
