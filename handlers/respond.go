package handlers

import (
	"errors"
	"net/http"

	"salonflow/services/scheduling"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto an HTTP status and JSON body. The
// conflict kinds carry their own taxonomy so clients can distinguish a
// double-booking from a break clash without parsing messages.
func respondError(c *gin.Context, err error) {
	var se *scheduling.Error
	if !errors.As(err, &se) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var status int
	switch se.Kind {
	case scheduling.KindNotFound:
		status = http.StatusNotFound
	case scheduling.KindUnauthorized:
		status = http.StatusUnauthorized
	case scheduling.KindValidation:
		status = http.StatusBadRequest
	case scheduling.KindInvalidState, scheduling.KindBookingConflict, scheduling.KindVacationOverlap:
		status = http.StatusConflict
	case scheduling.KindStaffUnavailable, scheduling.KindOutsideWorkingHours,
		scheduling.KindBreakConflict, scheduling.KindVacationConflict:
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
	}

	body := gin.H{"error": se.Message, "kind": string(se.Kind)}
	if se.Count > 0 {
		body["count"] = se.Count
	}
	c.JSON(status, body)
}
