package repository

import authdomain "task-manager-api/internal/auth/domain"

// UserRepository defines the interface for user and auth-token data access
type UserRepository interface {
	// Create creates a new user
	Create(user *authdomain.User) error

	// FindByEmail finds a user by email, nil if absent
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID finds a user by id, nil if absent
	FindByID(id string) (*authdomain.User, error)

	// Update updates an existing user
	Update(user *authdomain.User) error

	// DeleteWithTasks removes the user together with their tasks and
	// auth tokens in a single transaction
	DeleteWithTasks(user *authdomain.User) error

	// SaveAuthToken stores an issued token, pruning the user's expired ones
	SaveAuthToken(token *authdomain.AuthToken) error

	// FindAuthToken finds a stored token row, nil if absent
	FindAuthToken(token string) (*authdomain.AuthToken, error)

	// DeleteAuthToken revokes a single token
	DeleteAuthToken(token string) error

	// DeleteAuthTokensByUser revokes every token of a user
	DeleteAuthTokensByUser(userID string) error
}
