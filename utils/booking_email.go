package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// RoomInfo represents a room's number + floor for emails / display
type RoomInfo struct {
	Number string // e.g. "101"
	Floor  string // e.g. "1"
}

func (r RoomInfo) String() string {
	num := strings.TrimSpace(r.Number)
	if num == "" {
		num = "N/A"
	}
	if f := strings.TrimSpace(r.Floor); f != "" {
		return fmt.Sprintf("%s (floor %s)", num, f)
	}
	return num
}

// RoomOccupiedMail is the owner notice sent when a room becomes occupied.
// CheckIn/CheckOut/TotalPrice are empty for operator-driven changes.
type RoomOccupiedMail struct {
	To            string
	PropertyName  string
	Room          RoomInfo
	ReferenceCode string
	CheckIn       string
	CheckOut      string
	TotalPrice    string
	Notes         string
}

// SendRoomOccupiedEmail sends a plain + HTML notice to the property owner.
// Without SMTP settings it only logs the message.
func SendRoomOccupiedEmail(m RoomOccupiedMail) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := EnvOrDefault("SMTP_FROM_NAME", "Rentals")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] to:%s property:%s room:%s booking:%s stay:%s..%s total:%s",
			m.To, m.PropertyName, m.Room, m.ReferenceCode, m.CheckIn, m.CheckOut, m.TotalPrice)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	orNA := func(s string) string {
		if s = safe(s); s == "" {
			return "N/A"
		}
		return s
	}

	room := safe(m.Room.String())
	property := safe(m.PropertyName)

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	subject := fmt.Sprintf("Room %s is now occupied - %s", room, property)
	if m.ReferenceCode != "" {
		subject = fmt.Sprintf("New booking request %s - room %s", safe(m.ReferenceCode), room)
	}
	boundary := "----=_RENTAL_EMAIL_BOUNDARY"

	plainBody := fmt.Sprintf(
		"Hello,\n\n"+
			"Room %s at %s is now marked as occupied.\n\n"+
			"Booking Reference: %s\n"+
			"Check-In: %s\n"+
			"Check-Out: %s\n"+
			"Total: %s\n"+
			"Notes: %s\n\n"+
			"Pending bookings hold the room until you approve or decline them.\n",
		room, property, orNA(m.ReferenceCode), orNA(m.CheckIn), orNA(m.CheckOut), orNA(m.TotalPrice), orNA(m.Notes),
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Room occupied</title></head>
<body style="background:#f5f7fb;font-family:Arial, Helvetica, sans-serif;color:#222;">
<div style="max-width:640px;margin:20px auto;background:#fff;border:1px solid #e6eef6;padding:24px;border-radius:8px;">
  <h2>Room %s is now occupied</h2>
  <p>%s</p>
  <p><b>Booking Reference:</b> %s</p>
  <p><b>Check-In:</b> %s</p>
  <p><b>Check-Out:</b> %s</p>
  <p><b>Total:</b> %s</p>
  <p><b>Notes:</b> %s</p>
</div>
</body>
</html>`,
		htmlEscape(room), htmlEscape(property), htmlEscape(orNA(m.ReferenceCode)),
		htmlEscape(orNA(m.CheckIn)), htmlEscape(orNA(m.CheckOut)), htmlEscape(orNA(m.TotalPrice)), htmlEscape(orNA(m.Notes)),
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", safe(m.To)))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, smtpUser, []string{m.To}, []byte(sb.String())); err != nil {
		log.Printf("❌ Failed to send email to %s: %v", m.To, err)
		return err
	}

	log.Printf("📨 Email sent to %s (room %s)", m.To, room)
	return nil
}

// minimal html escaper for the small strings we use
func htmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(s)
}
