package models

import "time"

// TransactionStatus is the state of a single payment attempt.
type TransactionStatus string

const (
	TransactionPending TransactionStatus = "pending"
	TransactionPaid    TransactionStatus = "paid"
	TransactionFailed  TransactionStatus = "failed"
)

// PaymentTransaction is an append-style ledger entry for one payment attempt
// against a booking. The booking's paid flag must always agree with the most
// recent transaction for that booking.
type PaymentTransaction struct {
	ID            string            `bson:"id" json:"id"`
	SessionID     string            `bson:"session_id" json:"session_id"`
	BookingID     string            `bson:"booking_id" json:"booking_id"`
	UserID        string            `bson:"user_id" json:"user_id"`
	Amount        float64           `bson:"amount" json:"amount"`
	Currency      string            `bson:"currency" json:"currency"`
	PaymentStatus TransactionStatus `bson:"payment_status" json:"payment_status"`
	Metadata      map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt     time.Time         `bson:"created_at" json:"created_at"`
}

// CheckoutResult is returned by the mock payment operations.
type CheckoutResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ReminderPayload is the queued task body for a scheduled booking reminder.
type ReminderPayload struct {
	BookingID string `json:"booking_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}
