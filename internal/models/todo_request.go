package models

// CreateTodoRequest represents the request body for creating a todo.
// Only content is client-supplied; owner and creation timestamp are
// assigned server-side.
type CreateTodoRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateTodoRequest represents the request body for updating a todo's content
type UpdateTodoRequest struct {
	Content string `json:"content" binding:"required"`
}
