package controllers

import (
	"net/http"

	"rental-backend/models"
	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreatePropertyRequest struct {
	Name       string `json:"name" binding:"required"`
	Address    string `json:"address"`
	OwnerEmail string `json:"ownerEmail"`
}

type PropertyController struct {
	PropertySvc *services.PropertyService
}

func NewPropertyController(svc *services.PropertyService) *PropertyController {
	return &PropertyController{PropertySvc: svc}
}

// POST /api/properties
func (ctrl *PropertyController) CreateProperty(c *gin.Context) {
	var payload CreatePropertyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "name is required", gin.H{"details": err.Error()})
		return
	}

	p := models.Property{Name: payload.Name, Address: payload.Address, OwnerEmail: payload.OwnerEmail}
	if err := ctrl.PropertySvc.Create(c.Request.Context(), &p); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, p)
}

// GET /api/properties/:id
func (ctrl *PropertyController) GetProperty(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	p, err := ctrl.PropertySvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, p)
}

// GET /api/properties/:id/stats
func (ctrl *PropertyController) GetStats(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	stats, err := ctrl.PropertySvc.Stats(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// POST /api/properties/:id/stats/recount
func (ctrl *PropertyController) RecountStats(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	before, after, err := ctrl.PropertySvc.Recount(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"before":  before,
		"after":   after,
		"drifted": before != after,
	})
}
