package dto

// ============================
// Request DTOs
// ============================

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}
