// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// SessionTokenTTL is how long issued staff and client tokens stay valid.
const SessionTokenTTL = 24 * time.Hour

// RoleStaff and RoleClient are the role claims carried in session tokens.
const (
	RoleStaff  = "staff"
	RoleClient = "client"
	RoleAdmin  = "admin"
)
