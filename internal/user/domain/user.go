package domain

type ID string

// User is a row of the users table. Password is kept exactly as submitted.
type User struct {
	ID       ID
	Name     string
	Email    string
	Password string
}
