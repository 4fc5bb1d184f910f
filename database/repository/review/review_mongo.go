package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"booktrack/database"
	"booktrack/models"
	"booktrack/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	coll := database.DB().Collection("reviews")
	repo := &MongoReviewRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes enforces the one-review-per-booking invariant at the store
// level, so concurrent submitters race on the insert rather than the check.
func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "service_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new review document.
func (r *MongoReviewRepo) Create(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	review.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewConflict("booking already reviewed")
		}
		return utils.NewUnavailable(fmt.Sprintf("failed to create review: %v", err))
	}
	return nil
}

// GetByBooking retrieves the review for a booking, if any.
func (r *MongoReviewRepo) GetByBooking(bookingID string) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to fetch review for booking %s: %v", bookingID, err))
	}
	return &review, nil
}

// ListByService retrieves a service's reviews, newest first.
func (r *MongoReviewRepo) ListByService(serviceID string) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"service_id": serviceID}, opts)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to retrieve reviews: %v", err))
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	for cursor.Next(ctx) {
		var rev models.Review
		if err := cursor.Decode(&rev); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}

// RatingSummaries aggregates average rating and review count per service.
func (r *MongoReviewRepo) RatingSummaries() (map[string]models.RatingSummary, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$service_id"},
			{Key: "average", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to aggregate ratings: %v", err))
	}
	defer cursor.Close(ctx)

	summaries := make(map[string]models.RatingSummary)
	for cursor.Next(ctx) {
		var row struct {
			ServiceID string  `bson:"_id"`
			Average   float64 `bson:"average"`
			Count     int     `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode rating summary: %w", err)
		}
		summaries[row.ServiceID] = models.RatingSummary{Average: row.Average, Count: row.Count}
	}
	return summaries, nil
}
