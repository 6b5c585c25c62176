package models

// TodoResponse represents a todo record returned to the client
type TodoResponse struct {
	ID        string `json:"id"` // UUID
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UserID    string `json:"userId"`
}
