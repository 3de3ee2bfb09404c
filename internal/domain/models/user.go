package models

// User is a registered account. PasswordHash is the bcrypt hash of the
// password; it is never serialized.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
