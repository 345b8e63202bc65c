package handlers

import (
	"net/http"
	"strconv"
	"time"

	"salonflow/models"
	"salonflow/services/scheduling"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler manages weekly working hours.
type ScheduleHandler struct {
	Engine *scheduling.Engine
}

func NewScheduleHandler(engine *scheduling.Engine) *ScheduleHandler {
	return &ScheduleHandler{Engine: engine}
}

// GetWeekHandler returns every schedule record of a staff member.
func (h *ScheduleHandler) GetWeekHandler(c *gin.Context) {
	records, err := h.Engine.Schedules.ListByStaff(c.Request.Context(), c.Param("staffId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workingHours": records})
}

// UpsertDayHandler patches one weekday of a staff member's schedule. The day
// parameter is numeric, Sunday = 0.
func (h *ScheduleHandler) UpsertDayHandler(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 0 || day > 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day must be 0 (Sunday) through 6 (Saturday)"})
		return
	}

	var patch models.WorkingHoursPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	wh, err := h.Engine.UpsertWorkingDay(c.Request.Context(), c.Param("staffId"), time.Weekday(day), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wh)
}
