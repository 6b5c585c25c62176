package entities

// User represents a user entity in the database
type User struct {
	ID           string `json:"id"` // UUID
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Don't expose password hash in JSON
	Username     string `json:"username"`
	CreatedAt    string `json:"createdAt"` // RFC 3339 string, assigned by the service
	Version      int    `json:"version"`
}
