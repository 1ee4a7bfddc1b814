// Copyright (C) 2025 codexprt.dev <team@codexprt.dev>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/models"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/storage"
)

type memBookingStore struct {
	bookings []models.Booking
}

// SaveBooking enforces the same (user, professional) uniqueness the real
// store's index does.
func (s *memBookingStore) SaveBooking(b models.Booking) error {
	for _, existing := range s.bookings {
		if existing.UserID == b.UserID && existing.ProfessionalID == b.ProfessionalID {
			return storage.ErrAlreadyBooked
		}
	}
	s.bookings = append(s.bookings, b)
	return nil
}

func (s *memBookingStore) GetBookings(userID string) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *memBookingStore) DeleteBooking(userID, bookingID string) error {
	for i, b := range s.bookings {
		if b.UserID == userID && b.ID == bookingID {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memBookingStore) BookedProfessionals(userID string) ([]string, error) {
	ids := []string{}
	for _, b := range s.bookings {
		if b.UserID == userID {
			ids = append(ids, b.ProfessionalID)
		}
	}
	return ids, nil
}

func TestCreateBooking(t *testing.T) {
	store := &memBookingStore{}
	h := NewBookingHandler(store)

	body := `{"professional_id": "pro-1", "professional_name": "Ada", "topic": "Interview prep", "scheduled_at": "2026-09-04T15:00:00Z"}`
	rec := do(h.CreateBooking, "POST", "/api/bookings", "u1", body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var b models.Booking
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "u1", b.UserID)
	assert.Equal(t, "pro-1", b.ProfessionalID)

	// The same professional cannot be booked twice by the same user; the
	// store's uniqueness error maps to a conflict even when two requests
	// race past any earlier read.
	rec = do(h.CreateBooking, "POST", "/api/bookings", "u1", body)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Another user books the same professional fine.
	rec = do(h.CreateBooking, "POST", "/api/bookings", "u2", body)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateBookingValidation(t *testing.T) {
	h := NewBookingHandler(&memBookingStore{})

	rec := do(h.CreateBooking, "POST", "/api/bookings", "u1", `{"topic": "no professional"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h.CreateBooking, "POST", "/api/bookings", "u1", `{"professional_id": "pro-1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookingsScopedToUser(t *testing.T) {
	store := &memBookingStore{}
	h := NewBookingHandler(store)

	do(h.CreateBooking, "POST", "/api/bookings", "u1",
		`{"professional_id": "pro-1", "scheduled_at": "2026-09-04T15:00:00Z"}`)
	do(h.CreateBooking, "POST", "/api/bookings", "u2",
		`{"professional_id": "pro-2", "scheduled_at": "2026-09-05T15:00:00Z"}`)

	rec := do(h.GetBookings, "GET", "/api/bookings", "u1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var bookings []models.Booking
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bookings))
	assert.Len(t, bookings, 1)
	assert.Equal(t, "pro-1", bookings[0].ProfessionalID)
}

func TestBookedProfessionals(t *testing.T) {
	store := &memBookingStore{}
	h := NewBookingHandler(store)

	do(h.CreateBooking, "POST", "/api/bookings", "u1",
		`{"professional_id": "pro-1", "scheduled_at": "2026-09-04T15:00:00Z"}`)

	rec := do(h.BookedProfessionals, "GET", "/api/bookings/professionals", "u1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Professionals []string `json:"professionals"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"pro-1"}, resp.Professionals)
}
