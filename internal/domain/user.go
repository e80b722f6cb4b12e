package domain

import "time"

// User is the domain model for account holders. Email is the unique key and
// is matched case-sensitively as stored. Users are created on signup and
// never updated or deleted.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
