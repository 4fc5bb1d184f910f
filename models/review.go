package models

import "time"

// Review is created at most once per completed booking, by its customer.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	UserName  string    `bson:"user_name" json:"user_name"`
	ServiceID string    `bson:"service_id" json:"service_id"`
	BookingID string    `bson:"booking_id" json:"booking_id"`
	Rating    int       `bson:"rating" json:"rating"` // 1-5
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ReviewCreate is the payload for submitting a review.
type ReviewCreate struct {
	ServiceID string `json:"service_id" binding:"required"`
	BookingID string `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}
