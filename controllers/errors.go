package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"rental-backend/repository"
	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

func rejectionStatus(r services.Reason) int {
	switch r {
	case services.ReasonRoomNotAvailable,
		services.ReasonRoomHasActiveTenants,
		services.ReasonInvalidTransition,
		services.ReasonRoomAtCapacity,
		services.ReasonNoOccupants,
		services.ReasonInventoryDrift:
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

// errorCode turns "CheckInInPast" into "error.checkInInPast".
func errorCode(r services.Reason) string {
	s := string(r)
	if s == "" {
		return "error.unknown"
	}
	return "error." + strings.ToLower(s[:1]) + s[1:]
}

// respondError maps service errors onto the API error shape.
func respondError(c *gin.Context, err error) {
	var rej *services.Rejection
	switch {
	case errors.As(err, &rej):
		utils.JSONError(c, rejectionStatus(rej.Reason), errorCode(rej.Reason), rej.Message, gin.H{"reason": rej.Reason})
	case errors.Is(err, repository.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.notFound", err.Error())
	case repository.IsLockConflict(err):
		utils.JSONError(c, http.StatusConflict, "error.busy", "the room is being updated by another request, please retry")
	case repository.IsDuplicate(err):
		utils.JSONError(c, http.StatusConflict, "error.duplicate", err.Error())
	case repository.IsForeignKeyError(err):
		utils.JSONError(c, http.StatusBadRequest, "error.foreignKey", err.Error())
	case strings.HasPrefix(err.Error(), "validation"):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
	default:
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "internal error", gin.H{"details": err.Error()})
	}
}

// paramID reads a numeric :name path param, answering 400 itself on failure.
func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "invalid "+name+": "+raw)
		return 0, false
	}
	return uint(id), true
}
