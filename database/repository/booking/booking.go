package bookingRepo

import "booktrack/models"

// BookingRepository defines the interface for booking data access.
//
// Status mutations are conditional on the expected prior status so that two
// racing writers on the same booking cannot both succeed; the repository
// reports whether a document matched and leaves the Conflict decision to the
// caller.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	ListByUser(userID string) ([]models.Booking, error)
	ListByProvider(providerID string) ([]models.Booking, error)
	ListAll() ([]models.Booking, error)
	// UpdateStatusFrom sets the status to `to` only if it currently equals
	// `from`. Returns false when no document matched (missing booking or
	// lost race).
	UpdateStatusFrom(id string, from, to models.BookingStatus) (bool, error)
	// MarkPaid sets the booking's payment_status to paid.
	MarkPaid(id string) error
	// ConfirmPaid marks the latest payment transaction and the booking paid
	// in a single transaction, re-asserting that the booking is completed.
	// Returns false when the booking no longer satisfies that condition.
	ConfirmPaid(id string) (bool, error)
	CountAll() (int64, error)
	TopBooked(limit int) ([]models.TopService, error)
}
