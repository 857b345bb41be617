package repository

import (
	"errors"
	"time"

	authdomain "task-manager-api/internal/auth/domain"
	taskdomain "task-manager-api/internal/task/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(user *authdomain.User) error {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *authdomain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

// DeleteWithTasks removes the user's tasks, tokens and finally the user row
// itself. The transaction keeps the cascade atomic: no orphaned tasks if any
// step fails.
func (r *userRepository) DeleteWithTasks(user *authdomain.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", user.ID).Delete(&taskdomain.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&authdomain.AuthToken{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", user.ID).Delete(&authdomain.User{}).Error
	})
}

// SaveAuthToken adds a new token for the user without deleting existing ones.
// This allows multi-device login - each device keeps its own token.
// Only cleans up expired tokens to prevent DB bloat.
func (r *userRepository) SaveAuthToken(token *authdomain.AuthToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Only delete EXPIRED tokens for this user (cleanup, not invalidation)
		if err := tx.Where("user_id = ? AND expires_at < ?", token.UserID, time.Now()).Delete(&authdomain.AuthToken{}).Error; err != nil {
			return err
		}
		// Insert the new token (existing valid tokens remain)
		return tx.Create(token).Error
	})
}

func (r *userRepository) FindAuthToken(token string) (*authdomain.AuthToken, error) {
	var authToken authdomain.AuthToken
	err := r.db.Where("token = ?", token).First(&authToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &authToken, nil
}

func (r *userRepository) DeleteAuthToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&authdomain.AuthToken{}).Error
}

func (r *userRepository) DeleteAuthTokensByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&authdomain.AuthToken{}).Error
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
