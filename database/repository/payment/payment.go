package paymentRepo

import "booktrack/models"

// PaymentRepository defines the interface for the payment-transaction ledger.
type PaymentRepository interface {
	Create(txn *models.PaymentTransaction) error
	// MarkPaidBySession settles a pending attempt.
	MarkPaidBySession(sessionID string) error
	// LatestByBooking returns (nil, nil) when the booking has no ledger entry.
	LatestByBooking(bookingID string) (*models.PaymentTransaction, error)
}
