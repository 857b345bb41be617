package dto

import authdomain "task-manager-api/internal/auth/domain"

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=7"`
	Age      int    `json:"age" binding:"omitempty,gte=0"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the only fields a profile PATCH may touch.
// Any other key is rejected at the decoding boundary.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=7"`
	Age      *int    `json:"age,omitempty" validate:"omitempty,gte=0"`
}

type AuthResponse struct {
	User  *authdomain.User `json:"user"`
	Token string           `json:"token"`
}
