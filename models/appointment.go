package models

import "time"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentNoShow    AppointmentStatus = "no-show"
)

// Blocking reports whether an appointment in this status still occupies its
// staff member's time. Cancelled and no-show appointments free the window.
func (s AppointmentStatus) Blocking() bool {
	return s != AppointmentCancelled && s != AppointmentNoShow
}

// Terminal reports whether no further transition is permitted.
func (s AppointmentStatus) Terminal() bool {
	switch s {
	case AppointmentCancelled, AppointmentCompleted, AppointmentNoShow:
		return true
	}
	return false
}

// Appointment is a client booking against a staff member for one service.
// Date and EndTime are instants in the facility-local zone; EndTime is always
// derived as Date plus the service duration.
type Appointment struct {
	ID               string            `bson:"id" json:"id"`
	ClientID         string            `bson:"clientId" json:"clientId"`
	StaffID          string            `bson:"staffId" json:"staffId"`
	ServiceID        string            `bson:"serviceId" json:"serviceId"`
	Date             time.Time         `bson:"date" json:"date"`
	EndTime          time.Time         `bson:"endTime" json:"endTime"`
	Status           AppointmentStatus `bson:"status" json:"status"`
	Notes            string            `bson:"notes,omitempty" json:"notes,omitempty"`
	ReminderSent     bool              `bson:"reminderSent" json:"reminderSent"`
	ConfirmationSent bool              `bson:"confirmationSent" json:"confirmationSent"`
	CancelledBy      string            `bson:"cancelledBy,omitempty" json:"cancelledBy,omitempty"`
	CancelReason     string            `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	CreatedAt        time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// DateString returns the calendar date of the appointment.
func (a Appointment) DateString() string {
	return a.Date.Format(DateLayout)
}

// TimeWindow projects the appointment onto its minutes-from-midnight interval.
func (a Appointment) TimeWindow() Interval {
	return Interval{Start: MinutesOfDay(a.Date), End: MinutesOfDay(a.EndTime)}
}

// CreateAppointmentRequest is the booking payload.
type CreateAppointmentRequest struct {
	ClientID  string    `json:"clientId"`
	StaffID   string    `json:"staffId" binding:"required"`
	ServiceID string    `json:"serviceId" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
	Notes     string    `json:"notes"`
}

// UpdateAppointmentRequest is a partial update; nil fields are untouched.
// Changing Date, ServiceID or StaffID re-derives EndTime and re-runs the
// full conflict validation.
type UpdateAppointmentRequest struct {
	Date      *time.Time         `json:"date,omitempty"`
	ServiceID *string            `json:"serviceId,omitempty"`
	StaffID   *string            `json:"staffId,omitempty"`
	Status    *AppointmentStatus `json:"status,omitempty"`
	Notes     *string            `json:"notes,omitempty"`
}
