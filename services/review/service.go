package review

import (
	"context"

	bookingRepo "booktrack/database/repository/booking"
	reviewRepo "booktrack/database/repository/review"
	"booktrack/models"
	"booktrack/utils"

	"github.com/google/uuid"
)

// ReviewService is the review eligibility gate: one review per booking, by
// the booking's customer, only once the service has been completed.
type ReviewService interface {
	SubmitReview(ctx context.Context, ident models.Identity, in models.ReviewCreate) (*models.Review, error)
	ListByService(ctx context.Context, serviceID string) ([]models.Review, error)
}

// DefaultReviewService is the production implementation of ReviewService.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	Bookings bookingRepo.BookingRepository
}

// SubmitReview checks eligibility and persists the review, snapshotting the
// caller's display name. The one-review-per-booking rule is enforced by the
// store's unique index, so a concurrent duplicate submitter gets Conflict.
func (s *DefaultReviewService) SubmitReview(ctx context.Context, ident models.Identity, in models.ReviewCreate) (*models.Review, error) {
	if ident.Role != models.RoleUser {
		return nil, utils.NewForbidden("Only users can create reviews")
	}

	b, err := s.Bookings.GetByID(in.BookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != ident.ID {
		return nil, utils.NewForbidden("Not authorized")
	}
	if b.Status != models.StatusCompleted {
		return nil, utils.NewInvalidState("Can only review completed bookings")
	}

	existing, err := s.Repo.GetByBooking(in.BookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewConflict("Already reviewed")
	}

	if in.Rating < 1 || in.Rating > 5 {
		return nil, utils.NewInvalidInput("rating must be between 1 and 5")
	}

	rev := &models.Review{
		ID:        uuid.New().String(),
		UserID:    ident.ID,
		UserName:  ident.Name,
		ServiceID: in.ServiceID,
		BookingID: in.BookingID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	}
	if err := s.Repo.Create(rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// ListByService returns a service's reviews, newest first.
func (s *DefaultReviewService) ListByService(ctx context.Context, serviceID string) ([]models.Review, error) {
	return s.Repo.ListByService(serviceID)
}
