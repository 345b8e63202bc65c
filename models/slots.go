package models

// Slot is a candidate booking window of exact service duration, aligned to
// the scheduling grid.
type Slot struct {
	Date     string    `json:"date"`
	Start    TimeOfDay `json:"start"`
	End      TimeOfDay `json:"end"`
	Duration int       `json:"duration"` // minutes
}

// SlotQuery asks for bookable start times for one staff member and service
// on a single day.
type SlotQuery struct {
	StaffID   string `form:"staffId" binding:"required"`
	ServiceID string `form:"serviceId" binding:"required"`
	Date      string `form:"date" binding:"required"` // DateLayout
}
