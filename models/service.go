package models

import "time"

// Service is a bookable offering published by a provider.
type Service struct {
	ID           string    `bson:"id" json:"id"`
	ProviderID   string    `bson:"provider_id" json:"provider_id"`
	ProviderName string    `bson:"provider_name" json:"provider_name"`
	Name         string    `bson:"name" json:"name"`
	Description  string    `bson:"description" json:"description"`
	Category     string    `bson:"category" json:"category"`
	Price        float64   `bson:"price" json:"price"`
	Location     string    `bson:"location" json:"location"`
	Duration     int       `bson:"duration" json:"duration"` // minutes
	ImageURL     string    `bson:"image_url" json:"image_url"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`

	// Read-side enrichment, never persisted.
	AverageRating float64  `bson:"-" json:"average_rating"`
	ReviewCount   int      `bson:"-" json:"review_count"`
	Reviews       []Review `bson:"-" json:"reviews,omitempty"`
}

// ServiceCreate is the payload for publishing a new service.
type ServiceCreate struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Duration    int     `json:"duration" binding:"required"`
	ImageURL    string  `json:"image_url"`
}

// ServiceUpdate carries optional fields for a partial update.
type ServiceUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Location    *string  `json:"location"`
	Duration    *int     `json:"duration"`
	ImageURL    *string  `json:"image_url"`
}

// ServiceFilter narrows the public catalog listing.
type ServiceFilter struct {
	Category string
	Location string
	MinPrice *float64
	MaxPrice *float64
}

// RatingSummary aggregates the reviews of one service.
type RatingSummary struct {
	Average float64
	Count   int
}
