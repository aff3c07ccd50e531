package entity

import "time"

// User is the subset of an identity user record needed to detect duplicates.
type User struct {
	ID        int64
	Email     string
	FullName  string
	CreatedAt time.Time
}
