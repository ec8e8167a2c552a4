package dto

// LoginRequest payload for the panel login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
