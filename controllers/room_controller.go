package controllers

import (
	"log"
	"net/http"

	"rental-backend/models"
	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateRoomRequest struct {
	RoomNumber    string   `json:"roomNumber" binding:"required"`
	Floor         string   `json:"floor"`
	Capacity      int      `json:"capacity" binding:"required"`
	Occupied      int      `json:"occupied"`
	Status        string   `json:"status"`
	PricingModel  string   `json:"pricingModel"`
	MonthlyRate   *float64 `json:"monthlyRate" binding:"required"`
	DailyRate     *float64 `json:"dailyRate"`
	BillingPolicy string   `json:"billingPolicy"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// ----------------------------------------------------
// GET /api/rooms/:id
// ----------------------------------------------------

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.GetRoom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// POST /api/properties/:id/rooms
// ----------------------------------------------------

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	propertyID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload CreateRoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "roomNumber, capacity and monthlyRate are required", gin.H{"details": err.Error()})
		return
	}

	room := models.Room{
		RoomNumber:    payload.RoomNumber,
		Floor:         payload.Floor,
		Capacity:      payload.Capacity,
		Occupied:      payload.Occupied,
		Status:        models.RoomStatus(payload.Status),
		PricingModel:  models.PricingModel(payload.PricingModel),
		MonthlyRate:   *payload.MonthlyRate,
		DailyRate:     payload.DailyRate,
		BillingPolicy: models.BillingPolicy(payload.BillingPolicy),
	}

	out, err := ctrl.RoomSvc.CreateRoom(c.Request.Context(), propertyID, room)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, out)
}

// ----------------------------------------------------
// PATCH /api/rooms/:id/status
// ----------------------------------------------------

func (ctrl *RoomController) UpdateRoomStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "status is required", gin.H{"details": err.Error()})
		return
	}

	out, err := ctrl.RoomSvc.ChangeStatus(c.Request.Context(), id, payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// ----------------------------------------------------
// POST /api/rooms/:id/occupants
// ----------------------------------------------------

func (ctrl *RoomController) AssignOccupant(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	out, err := ctrl.RoomSvc.AssignOccupant(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// ----------------------------------------------------
// DELETE /api/rooms/:id/occupants
// ----------------------------------------------------

func (ctrl *RoomController) VacateOccupant(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	out, err := ctrl.RoomSvc.VacateOccupant(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// ----------------------------------------------------
// DELETE /api/rooms/:id
// ----------------------------------------------------

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	stats, err := ctrl.RoomSvc.DeleteRoom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deletedRoomId": id, "stats": stats})
}
