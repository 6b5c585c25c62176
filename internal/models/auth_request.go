package models

// SignUpRequest represents the request body for user registration
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username" binding:"required"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// EmailSearchRequest represents the query parameters for the
// email availability check
type EmailSearchRequest struct {
	Email string `form:"email" binding:"required,email"`
}
