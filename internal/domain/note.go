package domain

import "time"

// Note belongs to exactly one owner, referenced by the creating user's email.
// ID and CreatedAt are assigned by storage at insert time. Filename records
// the stored audio file a transcribed note originated from, when any.
type Note struct {
	ID         int64
	Title      string
	Content    *string
	OwnerEmail string
	Filename   *string
	CreatedAt  time.Time
}
