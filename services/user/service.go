package user

import (
	"context"
	"time"

	userRepo "booktrack/database/repository/user"
	"booktrack/models"
	"booktrack/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Issued tokens are valid for seven days.
const tokenTTL = 7 * 24 * time.Hour

// UserService covers registration, login and account lookup.
type UserService interface {
	Register(ctx context.Context, in models.UserCreate) (*models.AuthResponse, error)
	Login(ctx context.Context, in models.UserLogin) (*models.AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates an account and issues a token for it.
func (s *DefaultUserService) Register(ctx context.Context, in models.UserCreate) (*models.AuthResponse, error) {
	if in.Role != models.RoleUser && in.Role != models.RoleProvider && in.Role != models.RoleAdmin {
		return nil, utils.NewInvalidInput("unknown role")
	}

	existing, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewConflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         in.Role,
		Phone:        in.Phone,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(u.ID, u.Role, tokenTTL)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: *u}, nil
}

// Login verifies credentials and issues a token. Blocked accounts are
// rejected even with a valid password.
func (s *DefaultUserService) Login(ctx context.Context, in models.UserLogin) (*models.AuthResponse, error) {
	u, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		utils.GetLogger().Error("Login: failed to fetch user", zap.Error(err))
		return nil, err
	}
	if u == nil {
		return nil, utils.NewUnauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, utils.NewUnauthorized("Invalid credentials")
	}

	if u.Blocked {
		return nil, utils.NewForbidden("Account blocked")
	}

	token, err := utils.GenerateToken(u.ID, u.Role, tokenTTL)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: *u}, nil
}

// GetByID fetches an account by its id.
func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}
