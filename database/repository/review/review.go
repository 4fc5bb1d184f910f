package reviewRepo

import "booktrack/models"

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	// Create inserts a review; a second review for the same booking fails
	// with Conflict (unique index on booking_id).
	Create(review *models.Review) error
	// GetByBooking returns (nil, nil) when the booking has no review.
	GetByBooking(bookingID string) (*models.Review, error)
	ListByService(serviceID string) ([]models.Review, error)
	// RatingSummaries aggregates average rating and count per service id.
	RatingSummaries() (map[string]models.RatingSummary, error)
}
