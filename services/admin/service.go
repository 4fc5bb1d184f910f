package admin

import (
	"context"
	"encoding/json"
	"time"

	bookingRepo "booktrack/database/repository/booking"
	catalogRepo "booktrack/database/repository/catalog"
	userRepo "booktrack/database/repository/user"
	"booktrack/models"
	"booktrack/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = 30 * time.Second
	topServices   = 5
)

// AdminService covers the administrator dashboard and moderation operations.
type AdminService interface {
	Stats(ctx context.Context) (*models.AdminStats, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetUserBlocked(ctx context.Context, userID string, blocked bool) error
	DeleteUser(ctx context.Context, userID string) error
	ListBookings(ctx context.Context) ([]models.Booking, error)
}

// DefaultAdminService is the production implementation of AdminService.
type DefaultAdminService struct {
	Users    userRepo.UserRepository
	Bookings bookingRepo.BookingRepository
	Catalog  catalogRepo.CatalogRepository
	// Cache may be nil; stats are then recomputed on every call.
	Cache *redis.Client
}

// Stats returns platform counts and the most-booked services, enriched with
// their service documents. Results are cached briefly.
func (s *DefaultAdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	if cached := s.cachedStats(ctx); cached != nil {
		return cached, nil
	}

	stats := &models.AdminStats{}
	var err error
	if stats.TotalUsers, err = s.Users.CountByRole(models.RoleUser); err != nil {
		return nil, err
	}
	if stats.TotalProviders, err = s.Users.CountByRole(models.RoleProvider); err != nil {
		return nil, err
	}
	if stats.TotalServices, err = s.Catalog.Count(); err != nil {
		return nil, err
	}
	if stats.TotalBookings, err = s.Bookings.CountAll(); err != nil {
		return nil, err
	}

	top, err := s.Bookings.TopBooked(topServices)
	if err != nil {
		return nil, err
	}
	for i := range top {
		svc, err := s.Catalog.GetByID(top[i].ServiceID)
		if err != nil {
			// A booking may outlive its service; rank it without details.
			if code, ok := utils.CodeOf(err); ok && code == utils.CodeNotFound {
				continue
			}
			return nil, err
		}
		top[i].Service = svc
	}
	stats.TopServices = top

	s.storeStats(ctx, stats)
	return stats, nil
}

func (s *DefaultAdminService) cachedStats(ctx context.Context) *models.AdminStats {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, statsCacheKey).Result()
	if err != nil {
		return nil
	}
	var stats models.AdminStats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *DefaultAdminService) storeStats(ctx context.Context, stats *models.AdminStats) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, statsCacheKey, data, statsCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache admin stats", zap.Error(err))
	}
}

// ListUsers returns every account.
func (s *DefaultAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Users.GetAll()
}

// SetUserBlocked toggles an account's blocked flag.
func (s *DefaultAdminService) SetUserBlocked(ctx context.Context, userID string, blocked bool) error {
	return s.Users.SetBlocked(userID, blocked)
}

// DeleteUser removes an account.
func (s *DefaultAdminService) DeleteUser(ctx context.Context, userID string) error {
	return s.Users.Delete(userID)
}

// ListBookings returns every booking, newest first.
func (s *DefaultAdminService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Bookings.ListAll()
}
