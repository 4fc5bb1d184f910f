package userRepo

import "booktrack/models"

// UserRepository defines the interface for user account data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	// GetByEmail returns (nil, nil) when no account has that email.
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	CountByRole(role string) (int64, error)
	SetBlocked(id string, blocked bool) error
	Delete(id string) error
}
