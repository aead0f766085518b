package handlers

// HandlerBundle aggregates the route handlers wired up in main and handed
// to the route registration.
type HandlerBundle struct {
	Auth     *AuthHandler
	Rooms    *RoomHandler
	Bookings *BookingHandler
	Reviews  *ReviewHandler
}
