package domain

import "time"

// Task represents a single to-do item owned by one user
type Task struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Description string    `json:"description" gorm:"not null"`
	Completed   bool      `json:"completed" gorm:"default:false"`
	OwnerID     string    `json:"owner" gorm:"index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
