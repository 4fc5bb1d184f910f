package booking

import (
	"context"
	"fmt"

	bookingRepo "booktrack/database/repository/booking"
	catalogRepo "booktrack/database/repository/catalog"
	paymentRepo "booktrack/database/repository/payment"
	"booktrack/models"
	"booktrack/services/realtime"
	"booktrack/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Catalog  catalogRepo.CatalogRepository
	Payments paymentRepo.PaymentRepository
	Events   Publisher
	// Reminders may be nil; bookings are then created without a reminder.
	Reminders ReminderScheduler
}

// CreateBooking creates a pending booking for the caller against an existing
// service, snapshotting the service price and the parties' display names.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, ident models.Identity, in models.BookingCreate) (*models.Booking, error) {
	if ident.Role != models.RoleUser {
		return nil, utils.NewForbidden("Only users can create bookings")
	}

	svc, err := s.Catalog.GetByID(in.ServiceID)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		ID:            uuid.New().String(),
		UserID:        ident.ID,
		UserName:      ident.Name,
		ServiceID:     svc.ID,
		ServiceName:   svc.Name,
		ProviderID:    svc.ProviderID,
		ProviderName:  svc.ProviderName,
		Date:          in.Date,
		Time:          in.Time,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentPending,
		Amount:        svc.Price,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}

	if s.Reminders != nil {
		if err := s.Reminders.Schedule(b); err != nil {
			utils.GetLogger().Warn("failed to schedule booking reminder",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	return b, nil
}

// GetBooking fetches a booking visible to its customer, its provider, or an
// admin.
func (s *DefaultBookingService) GetBooking(ctx context.Context, ident models.Identity, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if ident.Role == models.RoleUser && b.UserID != ident.ID {
		return nil, utils.NewForbidden("Not authorized")
	}
	if ident.Role == models.RoleProvider && b.ProviderID != ident.ID {
		return nil, utils.NewForbidden("Not authorized")
	}
	return b, nil
}

// ListForUser returns the caller's own bookings, newest first.
func (s *DefaultBookingService) ListForUser(ctx context.Context, ident models.Identity) ([]models.Booking, error) {
	if ident.Role != models.RoleUser {
		return nil, utils.NewForbidden("Only users can access this")
	}
	return s.Repo.ListByUser(ident.ID)
}

// ListForProvider returns the booking requests addressed to the caller,
// newest first.
func (s *DefaultBookingService) ListForProvider(ctx context.Context, ident models.Identity) ([]models.Booking, error) {
	if ident.Role != models.RoleProvider {
		return nil, utils.NewForbidden("Only providers can access this")
	}
	return s.Repo.ListByProvider(ident.ID)
}

// authorizeTransition is the single authorization policy for status changes:
// providers act on their own bookings, customers act on their own bookings
// and may only cancel, admins are unrestricted.
func authorizeTransition(ident models.Identity, b *models.Booking, requested models.BookingStatus) error {
	switch ident.Role {
	case models.RoleProvider:
		if b.ProviderID != ident.ID {
			return utils.NewForbidden("Not authorized")
		}
	case models.RoleUser:
		if b.UserID != ident.ID {
			return utils.NewForbidden("Not authorized")
		}
		if requested != models.StatusCancelled {
			return utils.NewForbidden("Users can only cancel bookings")
		}
	}
	return nil
}

// UpdateStatus runs one transition of the booking state machine. The persist
// is conditional on the status the caller saw, so the loser of a concurrent
// race fails with Conflict instead of silently overwriting. On success the
// new status is fanned out to the booking's channel; delivery is advisory and
// never affects the result.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, ident models.Identity, bookingID string, requested models.BookingStatus) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	if err := authorizeTransition(ident, b, requested); err != nil {
		return nil, err
	}

	if !IsValidStatus(requested) {
		return nil, utils.NewInvalidInput(fmt.Sprintf("unknown booking status %q", requested))
	}
	if !CanTransition(b.Status, requested) {
		return nil, utils.NewInvalidTransition(fmt.Sprintf("cannot move booking from %s to %s", b.Status, requested))
	}

	matched, err := s.Repo.UpdateStatusFrom(bookingID, b.Status, requested)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, utils.NewConflict("booking was updated concurrently")
	}

	s.Events.Publish(realtime.BookingChannel(bookingID), realtime.Event{
		BookingID: bookingID,
		Status:    string(requested),
	})

	return s.Repo.GetByID(bookingID)
}
