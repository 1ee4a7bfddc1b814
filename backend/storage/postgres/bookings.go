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

package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/models"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/storage"
)

func (s *Store) SaveBooking(b models.Booking) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT INTO bookings (booking_id, user_id, professional_id, professional_name, topic, scheduled_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.UserID, b.ProfessionalID, b.ProfessionalName, b.Topic, b.ScheduledAt, b.CreatedAt)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
		return storage.ErrAlreadyBooked
	}
	return err
}

func (s *Store) GetBookings(userID string) ([]models.Booking, error) {
	rows, err := s.db.Query(`
		SELECT booking_id, user_id, professional_id, professional_name, topic, scheduled_at, created_at
		FROM bookings WHERE user_id = $1
		ORDER BY scheduled_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.ProfessionalID, &b.ProfessionalName,
			&b.Topic, &b.ScheduledAt, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (s *Store) DeleteBooking(userID, bookingID string) error {
	_, err := s.db.Exec(`
		DELETE FROM bookings WHERE user_id = $1 AND booking_id = $2`,
		userID, bookingID)
	return err
}

// BookedProfessionals lists professionals the user currently holds a booking
// with, so the UI can disable re-booking them.
func (s *Store) BookedProfessionals(userID string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT professional_id FROM bookings
		WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
