package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB. It also holds
// the payment_transactions collection for the paired paid-marking write.
type MongoBookingRepo struct {
	coll        *mongo.Collection
	paymentColl *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	repo := &MongoBookingRepo{
		coll:        db.Collection("bookings"),
		paymentColl: db.Collection("payment_transactions"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "provider_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return utils.NewUnavailable(fmt.Sprintf("failed to create booking: %v", err))
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFound("booking not found")
		}
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to fetch booking with id %s: %v", id, err))
	}
	return &booking, nil
}

// ListByUser retrieves a customer's bookings, newest first.
func (r *MongoBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	return r.findSorted(bson.M{"user_id": userID})
}

// ListByProvider retrieves the booking requests for a provider, newest first.
func (r *MongoBookingRepo) ListByProvider(providerID string) ([]models.Booking, error) {
	return r.findSorted(bson.M{"provider_id": providerID})
}

// ListAll retrieves every booking, newest first.
func (r *MongoBookingRepo) ListAll() ([]models.Booking, error) {
	return r.findSorted(bson.M{})
}

func (r *MongoBookingRepo) findSorted(query bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to retrieve bookings: %v", err))
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// UpdateStatusFrom conditionally moves a booking from one status to another.
// The filter carries the expected prior status, so a concurrent writer that
// got there first leaves nothing for this update to match.
func (r *MongoBookingRepo) UpdateStatusFrom(id string, from, to models.BookingStatus) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, utils.NewUnavailable(fmt.Sprintf("failed to update booking with id %s: %v", id, err))
	}
	return result.MatchedCount > 0, nil
}

// MarkPaid sets the booking's payment_status to paid.
func (r *MongoBookingRepo) MarkPaid(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"payment_status": models.PaymentPaid}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return utils.NewUnavailable(fmt.Sprintf("failed to mark booking %s paid: %v", id, err))
	}
	if result.MatchedCount == 0 {
		return utils.NewNotFound("booking not found")
	}
	return nil
}

// CountAll reports the total number of bookings.
func (r *MongoBookingRepo) CountAll() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, utils.NewUnavailable(fmt.Sprintf("failed to count bookings: %v", err))
	}
	return count, nil
}

// TopBooked ranks service ids by booking count.
func (r *MongoBookingRepo) TopBooked(limit int) ([]models.TopService, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$service_id"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to aggregate top services: %v", err))
	}
	defer cursor.Close(ctx)

	var top []models.TopService
	if err := cursor.All(ctx, &top); err != nil {
		return nil, fmt.Errorf("failed to decode top services: %w", err)
	}
	return top, nil
}
