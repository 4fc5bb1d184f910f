package handlers

import (
	userRepo "booktrack/database/repository/user"
)

// HandlerBundle groups the endpoint handlers and the repository the auth
// middleware needs, so route registration takes a single argument.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Booking  *BookingHandler
	Payment  *PaymentHandler
	Review   *ReviewHandler
	Admin    *AdminHandler
	Realtime *RealtimeHandler
}
