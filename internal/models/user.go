package models

// User is a registered account keyed by email address.
//
// Username and Phone are optional at signup and serialize as null when unset.
// The bcrypt hash never leaves the process; the json tag keeps it out of every
// response body.
type User struct {
	Email          string  `json:"email"`
	Username       *string `json:"username"`
	Phone          *string `json:"phone"`
	HashedPassword string  `json:"-"`
	ID             string  `json:"id"`
	IsActive       bool    `json:"is_active"`
}
