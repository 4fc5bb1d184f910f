package models

// TopService is one entry of the most-booked ranking.
type TopService struct {
	ServiceID string   `bson:"_id" json:"service_id"`
	Count     int      `bson:"count" json:"count"`
	Service   *Service `bson:"-" json:"service,omitempty"`
}

// AdminStats is the dashboard summary for administrators.
type AdminStats struct {
	TotalUsers     int64        `json:"total_users"`
	TotalProviders int64        `json:"total_providers"`
	TotalServices  int64        `json:"total_services"`
	TotalBookings  int64        `json:"total_bookings"`
	TopServices    []TopService `json:"top_services"`
}
