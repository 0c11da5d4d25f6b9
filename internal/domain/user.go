package domain

import "time"

// User represents a bot user, created lazily on first interaction
type User struct {
	ID          int64
	PlatformID  int64
	Username    string
	DisplayName string
	CreatedAt   time.Time
}
