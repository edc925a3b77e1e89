package handlers

// HandlerBundle aggregates the HTTP handlers so route registration takes a
// single dependency.
type HandlerBundle struct {
	Auth         *AuthHandler
	Booking      *BookingHandler
	Availability *AvailabilityHandler
	Messaging    *MessagingHandler
	Device       *DeviceHandler
}
