// controllers/booking_controller.go
package controllers

import (
	"net/http"

	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	RoomID    uint   `json:"roomId" binding:"required"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Notes     string `json:"notes"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// parseStay reads both dates, answering 400 itself on malformed input.
// Missing dates come back nil and are left to the validator.
func (ctrl *BookingController) parseStay(c *gin.Context, rawStart, rawEnd string) (*services.BookingRequest, bool) {
	start, err := utils.ParseDate(rawStart, ctrl.BookingSvc.Location)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", err.Error(), gin.H{"field": "startDate"})
		return nil, false
	}
	end, err := utils.ParseDate(rawEnd, ctrl.BookingSvc.Location)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", err.Error(), gin.H{"field": "endDate"})
		return nil, false
	}
	return &services.BookingRequest{StartDate: start, EndDate: end}, true
}

func quoteView(q services.StayQuote, perPerson float64) gin.H {
	return gin.H{
		"durationDays":        q.DurationDays,
		"months":              q.Months,
		"extraDays":           q.ExtraDays,
		"duration":            utils.FormatStayDuration(q.Months, q.ExtraDays),
		"policy":              q.Policy,
		"effectivePolicy":     q.EffectivePolicy,
		"monthlyRate":         q.MonthlyRate,
		"dailyRate":           q.DailyRate,
		"totalPrice":          q.TotalPrice,
		"totalPriceFormatted": utils.FormatCurrency(q.TotalPrice),
		"perPersonShare":      perPerson,
	}
}

// ---------------------------
// POST /api/bookings
// ---------------------------

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "payload must include roomId", gin.H{"details": err.Error()})
		return
	}

	req, ok := ctrl.parseStay(c, payload.StartDate, payload.EndDate)
	if !ok {
		return
	}
	req.RoomID = payload.RoomID
	req.Notes = payload.Notes

	result, err := ctrl.BookingSvc.Submit(c.Request.Context(), *req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"bookingId":           result.Booking.ID,
		"referenceCode":       result.Booking.ReferenceCode,
		"status":              result.Booking.Status,
		"startDate":           result.Booking.StartDate.Format(utils.DateLayout),
		"endDate":             result.Booking.EndDate.Format(utils.DateLayout),
		"totalPrice":          result.Booking.TotalPrice,
		"totalPriceFormatted": utils.FormatCurrency(result.Booking.TotalPrice),
		"roomId":              result.Room.ID,
		"roomNumber":          result.Room.RoomNumber,
		"floor":               result.Room.Floor,
		"quote":               quoteView(result.Quote, result.PerPersonShare),
		"room":                result.Room,
		"stats":               result.Stats,
		"transition":          result.Transition,
	})
}

// ---------------------------
// GET /api/bookings/:id
// ---------------------------

func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// ---------------------------
// GET /api/rooms/:id/bookings
// ---------------------------

func (ctrl *BookingController) GetRoomBookings(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	list, err := ctrl.BookingSvc.ListRoomBookings(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// ---------------------------
// GET /api/rooms/:id/quote?start=YYYY-MM-DD&end=YYYY-MM-DD
// ---------------------------

func (ctrl *BookingController) QuoteRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	stay, ok := ctrl.parseStay(c, c.Query("start"), c.Query("end"))
	if !ok {
		return
	}

	q, err := ctrl.BookingSvc.Quote(c.Request.Context(), id, stay.StartDate, stay.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"roomId":       q.Room.ID,
		"roomNumber":   q.Room.RoomNumber,
		"pricingModel": q.PricingModel,
		"capacity":     q.Room.Capacity,
		"quote":        quoteView(q.Quote, q.PerPersonShare),
	})
}
