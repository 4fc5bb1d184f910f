package paymentRepo

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

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a new instance of PaymentRepository using MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	coll := database.DB().Collection("payment_transactions")
	repo := &MongoPaymentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "session_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create appends a new ledger entry.
func (r *MongoPaymentRepo) Create(txn *models.PaymentTransaction) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	txn.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, txn); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewConflict("payment session already recorded")
		}
		return utils.NewUnavailable(fmt.Sprintf("failed to create payment transaction: %v", err))
	}
	return nil
}

// MarkPaidBySession settles a pending attempt.
func (r *MongoPaymentRepo) MarkPaidBySession(sessionID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"payment_status": models.TransactionPaid}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"session_id": sessionID}, update)
	if err != nil {
		return utils.NewUnavailable(fmt.Sprintf("failed to settle payment session %s: %v", sessionID, err))
	}
	if result.MatchedCount == 0 {
		return utils.NewNotFound("payment session not found")
	}
	return nil
}

// LatestByBooking retrieves the most recent ledger entry for a booking.
func (r *MongoPaymentRepo) LatestByBooking(bookingID string) (*models.PaymentTransaction, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var txn models.PaymentTransaction
	if err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}, opts).Decode(&txn); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to fetch payment transaction for booking %s: %v", bookingID, err))
	}
	return &txn, nil
}
