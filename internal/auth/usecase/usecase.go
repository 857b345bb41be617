package usecase

import (
	authdomain "task-manager-api/internal/auth/domain"
	authdto "task-manager-api/internal/auth/dto"
)

// AuthUsecase defines the interface for user account business logic
type AuthUsecase interface {
	// Signup registers a new account and issues its first token
	Signup(req *authdto.SignupRequest) (*authdto.AuthResponse, error)

	// Login verifies credentials and issues a new token
	Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error)

	// Logout revokes exactly the presented token
	Logout(token string) error

	// LogoutAll revokes every token of the user
	LogoutAll(userID string) error

	// ValidateToken verifies a bearer token's signature and its presence in
	// the revocation-aware token store, returning the token's user
	ValidateToken(token string) (*authdomain.User, error)

	// UpdateProfile applies an allow-listed profile update
	UpdateProfile(user *authdomain.User, req *authdto.UpdateProfileRequest) (*authdomain.User, error)

	// DeleteProfile removes the account and cascades to its tasks and tokens
	DeleteProfile(user *authdomain.User) error

	// SetAvatar stores normalized avatar bytes on the user
	SetAvatar(user *authdomain.User, data []byte) error

	// ClearAvatar removes the stored avatar
	ClearAvatar(user *authdomain.User) error

	// GetAvatar returns the stored avatar bytes of any user
	GetAvatar(userID string) ([]byte, error)
}
