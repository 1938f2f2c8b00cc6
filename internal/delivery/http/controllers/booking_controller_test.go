package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventhotelbooking/internal/delivery/http/middleware"
	"eventhotelbooking/internal/domain"
)

type mockBookingService struct {
	booking *domain.BookingWithRoom
	id      int
	err     error
}

func (m *mockBookingService) GetByUserID(ctx context.Context, userID int) (*domain.BookingWithRoom, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.booking, nil
}

func (m *mockBookingService) Create(ctx context.Context, userID, roomID int) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.id, nil
}

func (m *mockBookingService) ChangeRoom(ctx context.Context, bookingID, roomID, userID int) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.id, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func authedRequest(method, target string, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(middleware.SetUserID(req.Context(), 1))
}

func TestBookingController_GetBooking(t *testing.T) {
	t.Run("without auth context responds 401", func(t *testing.T) {
		ctrl := NewBookingController(testLogger(), &mockBookingService{})
		w := httptest.NewRecorder()
		ctrl.GetBooking(w, httptest.NewRequest(http.MethodGet, "/booking", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("returns booking with room attributes", func(t *testing.T) {
		svc := &mockBookingService{booking: &domain.BookingWithRoom{
			ID:   42,
			Room: &domain.Room{ID: 7, Name: "204", Capacity: 3, HotelID: 2},
		}}
		ctrl := NewBookingController(testLogger(), svc)
		w := httptest.NewRecorder()
		ctrl.GetBooking(w, authedRequest(http.MethodGet, "/booking", ""))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if _, ok := body["Room"]; !ok {
			t.Fatalf("response missing Room field: %s", w.Body.String())
		}
		var room domain.Room
		if err := json.Unmarshal(body["Room"], &room); err != nil {
			t.Fatalf("unmarshal room: %v", err)
		}
		if room.ID != 7 || room.Capacity != 3 || room.HotelID != 2 {
			t.Fatalf("unexpected room: %+v", room)
		}
	})

	t.Run("no booking responds 404 with empty body", func(t *testing.T) {
		ctrl := NewBookingController(testLogger(), &mockBookingService{err: domain.ErrBookingNotFound})
		w := httptest.NewRecorder()
		ctrl.GetBooking(w, authedRequest(http.MethodGet, "/booking", ""))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %s", w.Body.String())
		}
	})
}

func TestBookingController_CreateBooking(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{"unknown room", domain.ErrRoomNotFound, http.StatusNotFound},
		{"duplicate booking", domain.ErrDuplicateBooking, http.StatusUnauthorized},
		{"missing enrollment", domain.ErrEnrollmentRequired, http.StatusUnauthorized},
		{"reserved ticket", domain.ErrTicketNotPaid, http.StatusUnauthorized},
		{"remote ticket", domain.ErrTicketRemote, http.StatusUnauthorized},
		{"ticket without hotel", domain.ErrTicketWithoutHotel, http.StatusUnauthorized},
		{"full room", domain.ErrRoomCapacityExceeded, http.StatusForbidden},
		{"store failure", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewBookingController(testLogger(), &mockBookingService{err: tt.svcErr})
			w := httptest.NewRecorder()
			ctrl.CreateBooking(w, authedRequest(http.MethodPost, "/booking", `{"roomId":7}`))
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if w.Body.Len() != 0 {
				t.Fatalf("expected empty body, got %s", w.Body.String())
			}
		})
	}

	t.Run("success returns bookingId", func(t *testing.T) {
		ctrl := NewBookingController(testLogger(), &mockBookingService{id: 42})
		w := httptest.NewRecorder()
		ctrl.CreateBooking(w, authedRequest(http.MethodPost, "/booking", `{"roomId":7}`))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp BookingIDResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.BookingID != 42 {
			t.Fatalf("expected bookingId 42, got %d", resp.BookingID)
		}
	})

	t.Run("malformed body responds 400", func(t *testing.T) {
		ctrl := NewBookingController(testLogger(), &mockBookingService{id: 42})
		w := httptest.NewRecorder()
		ctrl.CreateBooking(w, authedRequest(http.MethodPost, "/booking", `{`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBookingController_ChangeBookingRoom(t *testing.T) {
	newRequest := func(bookingID, body string) *http.Request {
		req := authedRequest(http.MethodPut, "/booking/"+bookingID, body)
		req.SetPathValue("bookingID", bookingID)
		return req
	}

	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{"target booking missing", domain.ErrBookingNotFound, http.StatusNotFound},
		{"not the owner", domain.ErrBookingNotOwned, http.StatusUnauthorized},
		{"ineligible ticket", domain.ErrTicketRemote, http.StatusUnauthorized},
		{"full room", domain.ErrRoomCapacityExceeded, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewBookingController(testLogger(), &mockBookingService{err: tt.svcErr})
			w := httptest.NewRecorder()
			ctrl.ChangeBookingRoom(w, newRequest("42", `{"roomId":8}`))
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}

	t.Run("success returns bookingId", func(t *testing.T) {
		ctrl := NewBookingController(testLogger(), &mockBookingService{id: 42})
		w := httptest.NewRecorder()
		ctrl.ChangeBookingRoom(w, newRequest("42", `{"roomId":8}`))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp BookingIDResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.BookingID != 42 {
			t.Fatalf("expected bookingId 42, got %d", resp.BookingID)
		}
	})

	t.Run("non-numeric booking ID responds 400", func(t *testing.T) {
		ctrl := NewBookingController(testLogger(), &mockBookingService{id: 42})
		w := httptest.NewRecorder()
		ctrl.ChangeBookingRoom(w, newRequest("abc", `{"roomId":8}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
