// File: utils/locker.go
package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// StaffLockPrefix is the prefix used for Redis booking lock keys.
const StaffLockPrefix = "lock:staff:"

// StaffLockTTL bounds how long a booking lock may be held if the holder dies.
const StaffLockTTL = 10 * time.Second

// releaseScript deletes the lock only when it is still held by the caller.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Locker serializes booking writes per staff member through Redis SET NX.
type Locker struct {
	client *redis.Client
}

// NewLocker wraps a Redis client as a booking locker.
func NewLocker(client *redis.Client) *Locker {
	return &Locker{client: client}
}

// AcquireStaffLock attempts to take the booking lock for the given staff
// member. It returns a release token on success, or ok=false when another
// writer holds the lock.
func (l *Locker) AcquireStaffLock(ctx context.Context, staffID string) (token string, ok bool, err error) {
	token = uuid.New().String()
	ok, err = l.client.SetNX(ctx, StaffLockPrefix+staffID, token, StaffLockTTL).Result()
	if err != nil {
		return "", false, err
	}
	return token, ok, nil
}

// ReleaseStaffLock frees the booking lock if the token still owns it.
func (l *Locker) ReleaseStaffLock(ctx context.Context, staffID, token string) error {
	return releaseScript.Run(ctx, l.client, []string{StaffLockPrefix + staffID}, token).Err()
}
