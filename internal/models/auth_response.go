package models

// SignUpResponse represents the created user record returned after
// registration. The password hash is never included.
type SignUpResponse struct {
	ID        string `json:"id"` // UUID
	Email     string `json:"email"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
	Version   int    `json:"version"`
}

// LoginResponse represents the response after successful authentication.
// The same token is also set as the accessToken cookie.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}
