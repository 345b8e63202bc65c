package models

import "time"

// ReminderPayload is the asynq task body for a scheduled appointment
// reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	ClientID      string `json:"clientId"`
	StaffID       string `json:"staffId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}

// Notification is a record of a dispatched (or attempted) message.
type Notification struct {
	ID          string    `bson:"id" json:"id"`
	RecipientID string    `bson:"recipientId" json:"recipientId"`
	Kind        string    `bson:"kind" json:"kind"` // confirmation, reminder, cancellation, vacation-decision
	Title       string    `bson:"title" json:"title"`
	Body        string    `bson:"body" json:"body"`
	Sent        bool      `bson:"sent" json:"sent"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
