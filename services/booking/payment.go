package booking

import (
	"context"

	"booktrack/config"
	"booktrack/models"
	"booktrack/utils"

	"github.com/google/uuid"
)

// InitiateMockPayment records a simulated checkout for the caller's booking.
// There is no external payment processor; the attempt settles immediately.
// A booking that is already paid yields an idempotent success without a new
// ledger entry.
func (s *DefaultBookingService) InitiateMockPayment(ctx context.Context, ident models.Identity, bookingID string) (*models.CheckoutResult, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != ident.ID {
		return nil, utils.NewForbidden("Not authorized")
	}

	if b.PaymentStatus == models.PaymentPaid {
		return &models.CheckoutResult{
			Success:   true,
			Message:   "Already paid",
			SessionID: "mock_existing",
		}, nil
	}

	txn := &models.PaymentTransaction{
		ID:            uuid.New().String(),
		SessionID:     "mock_" + uuid.New().String(),
		BookingID:     b.ID,
		UserID:        ident.ID,
		Amount:        b.Amount,
		Currency:      config.AppConfig.PaymentCurrency,
		PaymentStatus: models.TransactionPending,
		Metadata:      map[string]string{"mode": "mock"},
	}
	if err := s.Payments.Create(txn); err != nil {
		return nil, err
	}

	// Mock settlement: no external call, the attempt is paid right away.
	if err := s.Payments.MarkPaidBySession(txn.SessionID); err != nil {
		return nil, err
	}
	if err := s.Repo.MarkPaid(b.ID); err != nil {
		return nil, err
	}

	return &models.CheckoutResult{
		Success:   true,
		Message:   "Payment successful (mock)",
		SessionID: txn.SessionID,
	}, nil
}

// ConfirmMockPayment marks the booking and its latest payment transaction
// paid, but only once the provider has completed the service. The two writes
// happen atomically with respect to each other.
func (s *DefaultBookingService) ConfirmMockPayment(ctx context.Context, ident models.Identity, bookingID string) (*models.CheckoutResult, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != ident.ID {
		return nil, utils.NewForbidden("Unauthorized")
	}

	if b.Status != models.StatusCompleted {
		return nil, utils.NewInvalidState("Payment allowed only after service completion")
	}

	confirmed, err := s.Repo.ConfirmPaid(b.ID)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, utils.NewInvalidState("Payment allowed only after service completion")
	}

	return &models.CheckoutResult{
		Success: true,
		Message: "Mock payment successful",
	}, nil
}
