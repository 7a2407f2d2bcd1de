package models

// User credentials are stored and compared as given, no hashing.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
