package config

import (
	"log"
	"time"

	"github.com/sony/gobreaker"
)

// NotifierBreaker names the breaker guarding owner notification mail.
const NotifierBreaker = "SMTP-Notifier"

// breakerTimeout is how long a breaker stays open before letting a trial call through.
// The notifier breaker waits a full minute.
func breakerTimeout(name string) time.Duration {
	if name == NotifierBreaker {
		return time.Minute
	}
	return 30 * time.Second
}

// NewCircuitBreaker creates a circuit breaker with standard settings.
// The name parameter uniquely identifies the circuit breaker instance.
func NewCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     breakerTimeout(name),
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Open circuit after 3 consecutive failures
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[CRITICAL] Circuit Breaker %s: %s -> %s", name, from, to)
		},
	})
}
