package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventhotelbooking/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// requireAuth wraps the booking routes; the auth and health routes are open.
func NewRouter(
	bookingController *controllers.BookingController,
	authController *controllers.AuthController,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Booking
	mux.HandleFunc("GET /booking", requireAuth(bookingController.GetBooking))
	mux.HandleFunc("POST /booking", requireAuth(bookingController.CreateBooking))
	mux.HandleFunc("PUT /booking/{bookingID}", requireAuth(bookingController.ChangeBookingRoom))

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Ops
	mux.HandleFunc("GET /health", controllers.Health)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
