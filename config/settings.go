package config

import (
	"log"
	"strings"
	"time"

	"rental-backend/utils"
)

const (
	StoreMySQL  = "mysql"
	StoreMemory = "memory"
)

type Settings struct {
	Port           string
	StoreDriver    string
	CorsOrigins    []string
	Location       *time.Location
	CurrencySymbol string
	SeedDemoData   bool
}

// Load reads settings from the environment. .env is loaded by main before this.
func Load() *Settings {
	s := &Settings{
		Port:           utils.EnvOrDefault("PORT", "8080"),
		StoreDriver:    strings.ToLower(utils.EnvOrDefault("STORE_DRIVER", StoreMySQL)),
		CorsOrigins:    parseCorsOrigins(utils.EnvOrDefault("CORS_ORIGINS", "")),
		CurrencySymbol: utils.EnvOrDefault("CURRENCY_SYMBOL", ""),
		SeedDemoData:   utils.EnvBool("SEED_DEMO_DATA", false),
		Location:       time.Local,
	}

	if tz := utils.EnvOrDefault("BOOKING_TIMEZONE", ""); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Printf("⚠️  invalid BOOKING_TIMEZONE %q (%v); using local time", tz, err)
		} else {
			s.Location = loc
		}
	}

	if s.StoreDriver != StoreMySQL && s.StoreDriver != StoreMemory {
		log.Printf("⚠️  unknown STORE_DRIVER %q; falling back to %s", s.StoreDriver, StoreMySQL)
		s.StoreDriver = StoreMySQL
	}
	return s
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
