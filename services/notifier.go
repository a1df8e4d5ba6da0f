package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"rental-backend/utils"

	"github.com/sony/gobreaker"
)

// RoomOccupiedEvent is emitted after a room has been committed as occupied,
// either by a booking or by an operator.
type RoomOccupiedEvent struct {
	PropertyID    uint
	PropertyName  string
	OwnerEmail    string
	RoomID        uint
	RoomNumber    string
	Floor         string
	BookingID     uint
	ReferenceCode string
	StartDate     time.Time
	EndDate       time.Time
	TotalPrice    float64
	Notes         string
}

type Notifier interface {
	RoomOccupied(ctx context.Context, evt RoomOccupiedEvent) error
}

// EmailNotifier mails the property owner through SMTP, guarded by a circuit
// breaker so a dead mail server does not stall every booking.
type EmailNotifier struct {
	cb   *gobreaker.CircuitBreaker
	send func(utils.RoomOccupiedMail) error
}

func NewEmailNotifier(cb *gobreaker.CircuitBreaker) *EmailNotifier {
	return &EmailNotifier{cb: cb, send: utils.SendRoomOccupiedEmail}
}

func (n *EmailNotifier) RoomOccupied(ctx context.Context, evt RoomOccupiedEvent) error {
	if evt.OwnerEmail == "" {
		log.Printf("notify: property %d has no owner email; skipping room %d", evt.PropertyID, evt.RoomID)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	mail := utils.RoomOccupiedMail{
		To:            evt.OwnerEmail,
		PropertyName:  evt.PropertyName,
		Room:          utils.RoomInfo{Number: evt.RoomNumber, Floor: evt.Floor},
		ReferenceCode: evt.ReferenceCode,
		Notes:         evt.Notes,
	}
	if evt.BookingID != 0 {
		mail.CheckIn = evt.StartDate.Format("2006-01-02")
		mail.CheckOut = evt.EndDate.Format("2006-01-02")
		mail.TotalPrice = utils.FormatCurrency(evt.TotalPrice)
	}

	_, err := n.cb.Execute(func() (interface{}, error) {
		return nil, n.send(mail)
	})
	if err != nil {
		return fmt.Errorf("notify owner of room %d: %w", evt.RoomID, err)
	}
	return nil
}
