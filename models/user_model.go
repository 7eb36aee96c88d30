package models

// User is the minimal profile kept after login. The remote users collection
// also carries the password; it is matched during login and never retained.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
