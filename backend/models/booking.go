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

package models

import (
	"time"
)

// Booking is a scheduled mentoring session with a professional. A
// professional can only be booked once per user until the booking is
// cancelled.
type Booking struct {
	ID               string    `json:"booking_id" db:"booking_id"`
	UserID           string    `json:"user_id" db:"user_id"`
	ProfessionalID   string    `json:"professional_id" db:"professional_id"`
	ProfessionalName string    `json:"professional_name" db:"professional_name"`
	Topic            string    `json:"topic" db:"topic"`
	ScheduledAt      time.Time `json:"scheduled_at" db:"scheduled_at"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
