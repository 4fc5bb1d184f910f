package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"booktrack/models"
	"booktrack/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConfirmPaid marks the latest payment transaction for the booking and the
// booking itself paid, atomically. The booking-side filter re-asserts that
// the service has been completed, so the payment gate holds even if the
// status changed between the caller's read and this write. Returns false
// (and commits nothing) when that condition no longer holds.
func (r *MongoBookingRepo) ConfirmPaid(id string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return false, utils.NewUnavailable(fmt.Sprintf("could not start mongo session: %v", err))
	}
	defer sess.EndSession(ctx)

	matched := false
	txnFn := func(sc mongo.SessionContext) error {
		bookingFilter := bson.M{"id": id, "status": models.StatusCompleted}
		bookingUpdate := bson.M{"$set": bson.M{"payment_status": models.PaymentPaid}}

		res, err := r.coll.UpdateOne(sc, bookingFilter, bookingUpdate)
		if err != nil {
			return fmt.Errorf("mark booking paid failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return errNotConfirmable
		}

		// Latest attempt wins; a booking without a ledger entry is tolerated,
		// the booking flag stays the source of truth.
		opts := options.FindOneAndUpdate().SetSort(bson.D{{Key: "created_at", Value: -1}})
		txnUpdate := bson.M{"$set": bson.M{"payment_status": models.TransactionPaid}}
		err = r.paymentColl.FindOneAndUpdate(sc, bson.M{"booking_id": id}, txnUpdate, opts).Err()
		if err != nil && err != mongo.ErrNoDocuments {
			return fmt.Errorf("mark transaction paid failed: %w", err)
		}

		matched = true
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == errNotConfirmable {
			return false, nil
		}
		return false, utils.NewUnavailable(fmt.Sprintf("payment confirmation transaction failed: %v", err))
	}

	return matched, nil
}

var errNotConfirmable = fmt.Errorf("booking not in a confirmable state")
