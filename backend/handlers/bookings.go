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
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/middleware"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/models"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/storage"
)

type BookingHandler struct {
	store storage.BookingStore
}

func NewBookingHandler(store storage.BookingStore) *BookingHandler {
	return &BookingHandler{store: store}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetClientID(r)

	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		http.Error(w, "Invalid booking", http.StatusBadRequest)
		return
	}
	if booking.ProfessionalID == "" || booking.ScheduledAt.IsZero() {
		http.Error(w, "Professional and schedule are required", http.StatusBadRequest)
		return
	}

	booking.ID = uuid.New().String()
	booking.UserID = userID

	// Uniqueness per (user, professional) is the store's to enforce, so
	// concurrent requests cannot double-book.
	if err := h.store.SaveBooking(booking); err != nil {
		if errors.Is(err, storage.ErrAlreadyBooked) {
			http.Error(w, "Professional already booked", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to save booking", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(booking)
}

func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetClientID(r)

	bookings, err := h.store.GetBookings(userID)
	if err != nil {
		http.Error(w, "Failed to load bookings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bookings)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetClientID(r)
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	if err := h.store.DeleteBooking(userID, bookingID); err != nil {
		http.Error(w, "Failed to cancel booking", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "cancelled"})
}

func (h *BookingHandler) BookedProfessionals(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetClientID(r)

	ids, err := h.store.BookedProfessionals(userID)
	if err != nil {
		http.Error(w, "Failed to load booked professionals", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"professionals": ids,
	})
}
