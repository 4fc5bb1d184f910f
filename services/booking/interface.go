package booking

import (
	"context"

	"booktrack/models"
	"booktrack/services/realtime"
)

// Publisher fans a status-change event out to a booking's channel. Satisfied
// by *realtime.Hub.
type Publisher interface {
	Publish(channel string, ev realtime.Event)
}

// ReminderScheduler enqueues a reminder for an upcoming booking.
type ReminderScheduler interface {
	Schedule(b *models.Booking) error
}

// BookingService is the booking lifecycle engine: creation, the status state
// machine, and the mock payment gate.
type BookingService interface {
	CreateBooking(ctx context.Context, ident models.Identity, in models.BookingCreate) (*models.Booking, error)
	GetBooking(ctx context.Context, ident models.Identity, bookingID string) (*models.Booking, error)
	ListForUser(ctx context.Context, ident models.Identity) ([]models.Booking, error)
	ListForProvider(ctx context.Context, ident models.Identity) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, ident models.Identity, bookingID string, requested models.BookingStatus) (*models.Booking, error)
	InitiateMockPayment(ctx context.Context, ident models.Identity, bookingID string) (*models.CheckoutResult, error)
	ConfirmMockPayment(ctx context.Context, ident models.Identity, bookingID string) (*models.CheckoutResult, error)
}
