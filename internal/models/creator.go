package models

import "time"

// Creator is the authenticated account type. Only verified creators may
// manage donation points; the backend owns the record, the client keeps a
// read-through copy in the session.
type Creator struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatorUpdate carries the mutable profile fields. Nil means "leave as is".
type CreatorUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
