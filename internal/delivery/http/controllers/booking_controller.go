package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventhotelbooking/internal/delivery/http/helpers"
	"eventhotelbooking/internal/delivery/http/middleware"
	"eventhotelbooking/internal/domain"
)

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// BookingRequest is the request body for POST /booking and PUT /booking/{bookingID}.
type BookingRequest struct {
	RoomID int `json:"roomId"`
}

// BookingIDResponse is the success body for POST /booking and PUT /booking/{bookingID}.
type BookingIDResponse struct {
	BookingID int `json:"bookingId"`
}

// GetBooking godoc
// @Summary Get the caller's booking
// @Description Returns the authenticated user's booking with its room's public attributes.
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.BookingWithRoom
// @Failure 401 "missing or invalid token"
// @Failure 404 "user has no booking"
// @Router /booking [get]
func (c *BookingController) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteStatus(w, http.StatusUnauthorized)
		return
	}

	booking, err := c.Service.GetByUserID(r.Context(), userID)
	if err != nil {
		c.writeBookingError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, booking)
}

// CreateBooking godoc
// @Summary Book a room
// @Description Books the given room for the authenticated user, subject to enrollment, ticket eligibility, and room capacity.
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.BookingRequest true "Target room"
// @Success 200 {object} controllers.BookingIDResponse
// @Failure 400 "malformed body"
// @Failure 401 "not enrolled, already booked, or ineligible ticket"
// @Failure 403 "room at maximum capacity"
// @Failure 404 "room does not exist"
// @Router /booking [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteStatus(w, http.StatusUnauthorized)
		return
	}

	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.WriteStatus(w, http.StatusBadRequest)
		return
	}

	bookingID, err := c.Service.Create(r.Context(), userID, req.RoomID)
	if err != nil {
		c.writeBookingError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, BookingIDResponse{BookingID: bookingID})
}

// ChangeBookingRoom godoc
// @Summary Move a booking to another room
// @Description Moves the authenticated user's booking to the given room, subject to ownership, ticket eligibility, and target room capacity.
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookingID path int true "Booking ID"
// @Param body body controllers.BookingRequest true "Target room"
// @Success 200 {object} controllers.BookingIDResponse
// @Failure 400 "malformed body or booking ID"
// @Failure 401 "not enrolled, not the booking's owner, or ineligible ticket"
// @Failure 403 "room at maximum capacity"
// @Failure 404 "room or booking does not exist"
// @Router /booking/{bookingID} [put]
func (c *BookingController) ChangeBookingRoom(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteStatus(w, http.StatusUnauthorized)
		return
	}

	bookingID, err := strconv.Atoi(r.PathValue("bookingID"))
	if err != nil || bookingID <= 0 {
		helpers.WriteStatus(w, http.StatusBadRequest)
		return
	}

	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.WriteStatus(w, http.StatusBadRequest)
		return
	}

	updatedID, err := c.Service.ChangeRoom(r.Context(), bookingID, req.RoomID, userID)
	if err != nil {
		c.writeBookingError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, BookingIDResponse{BookingID: updatedID})
}

// writeBookingError maps engine error kinds onto status codes. Distinct
// causes collapse onto the same code; the body stays empty so internal
// detail never reaches the caller.
func (c *BookingController) writeBookingError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteStatus(w, http.StatusNotFound)
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrIneligibleTicket):
		helpers.WriteStatus(w, http.StatusUnauthorized)
	case errors.Is(err, domain.ErrRoomCapacityExceeded):
		helpers.WriteStatus(w, http.StatusForbidden)
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteStatus(w, http.StatusInternalServerError)
	}
}
