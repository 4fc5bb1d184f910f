package models

import "time"

// BookingStatus is the service-side state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusRejected  BookingStatus = "rejected"
	StatusEnRoute   BookingStatus = "en-route"
	StatusStarted   BookingStatus = "started"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus is the payment-side state of a booking.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking is a scheduled instance of a customer purchasing a provider's
// service. Amount snapshots the service price at creation and never changes.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	UserID        string        `bson:"user_id" json:"user_id"`
	UserName      string        `bson:"user_name" json:"user_name"`
	ServiceID     string        `bson:"service_id" json:"service_id"`
	ServiceName   string        `bson:"service_name" json:"service_name"`
	ProviderID    string        `bson:"provider_id" json:"provider_id"`
	ProviderName  string        `bson:"provider_name" json:"provider_name"`
	Date          string        `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time          string        `bson:"time" json:"time"` // "HH:MM"
	Status        BookingStatus `bson:"status" json:"status"`
	PaymentStatus PaymentStatus `bson:"payment_status" json:"payment_status"`
	Amount        float64       `bson:"amount" json:"amount"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
}

// BookingCreate is the payload for creating a booking against a service.
type BookingCreate struct {
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

// BookingStatusUpdate is the payload for a requested status transition.
type BookingStatusUpdate struct {
	Status BookingStatus `json:"status" binding:"required"`
}
