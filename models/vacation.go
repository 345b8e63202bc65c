package models

import "time"

// VacationStatus is the lifecycle state of a vacation request.
type VacationStatus string

const (
	VacationPending  VacationStatus = "pending"
	VacationApproved VacationStatus = "approved"
	VacationRejected VacationStatus = "rejected"
)

// Vacation is an inclusive date range during which a staff member is wholly
// unavailable. Dates use DateLayout strings.
type Vacation struct {
	ID              string         `bson:"id" json:"id"`
	StaffID         string         `bson:"staffId" json:"staffId"`
	StartDate       string         `bson:"startDate" json:"startDate"`
	EndDate         string         `bson:"endDate" json:"endDate"`
	Reason          string         `bson:"reason,omitempty" json:"reason,omitempty"`
	Status          VacationStatus `bson:"status" json:"status"`
	ApprovedBy      string         `bson:"approvedBy,omitempty" json:"approvedBy,omitempty"`
	RejectionReason string         `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	CreatedAt       time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// CoversDate reports whether the inclusive range contains the given date.
func (v Vacation) CoversDate(date string) bool {
	return v.StartDate <= date && v.EndDate >= date
}

// OverlapsRange reports whether the inclusive ranges share at least one day.
func (v Vacation) OverlapsRange(startDate, endDate string) bool {
	return v.StartDate <= endDate && v.EndDate >= startDate
}

// Started reports whether the vacation has begun as of the given date.
func (v Vacation) Started(today string) bool {
	return v.StartDate <= today
}

// VacationRequest is the payload for creating a vacation.
type VacationRequest struct {
	StaffID   string `json:"staffId" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason"`
}

// VacationDecision is the result of an approval: the approval itself plus the
// advisory list of appointments that now collide with the approved range.
type VacationDecision struct {
	Vacation                Vacation      `json:"vacation"`
	ConflictingAppointments []Appointment `json:"conflictingAppointments,omitempty"`
}
