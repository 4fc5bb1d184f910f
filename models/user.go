package models

import "time"

// Roles recognised by the platform.
const (
	RoleUser     = "user"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// User represents a registered account (customer, provider or admin).
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password" json:"-"`
	Name         string    `bson:"name" json:"name"`
	Role         string    `bson:"role" json:"role"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Blocked      bool      `bson:"blocked" json:"blocked"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// UserCreate is the registration payload.
type UserCreate struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Phone    string `json:"phone"`
}

// UserLogin is the login payload.
type UserLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Identity is the authenticated caller attached to each request by the
// auth middleware. Blocked accounts never make it this far.
type Identity struct {
	ID   string
	Role string
	Name string
}
