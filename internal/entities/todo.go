package entities

// Todo represents a todo entity in the database
type Todo struct {
	ID        string `json:"id"` // UUID
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"` // RFC 3339 string, assigned by the service
	UserID    string `json:"userId"`    // Owning user (UUID)
}
