package models

import "time"

// Staff is a bookable staff member. Schedule and vacations are stored
// independently and queried by StaffID.
type Staff struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	ServiceIDs   []string  `bson:"serviceIds,omitempty" json:"serviceIds,omitempty"`
	Active       bool      `bson:"active" json:"active"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// OffersService reports whether the staff member is eligible for a service.
// An empty eligibility list means any active service.
func (s Staff) OffersService(serviceID string) bool {
	if len(s.ServiceIDs) == 0 {
		return true
	}
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
