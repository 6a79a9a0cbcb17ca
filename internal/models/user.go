package models

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don’t expose hash
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Email        string `json:"email,omitempty"`
}

// Registration is the input for creating an account.
type Registration struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
}
