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

package storage

import (
	"errors"

	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/models"
)

// ErrAlreadyBooked reports an attempt to book a professional the user
// already holds an active booking with.
var ErrAlreadyBooked = errors.New("professional already booked")

type ProgressStore interface {
	// GetProgress never fails on an absent record; it returns a zero-value
	// progress for the user instead.
	GetProgress(userID string) (*models.UserProgress, error)
	ApplyCompletion(userID, questionID string, points, streak int, completedOn string) error
	SwitchTrack(userID, careerPath string) error

	// Per-track chapter completion (roadmap checkmarks)
	CompletedChapters(userID, careerPath string) ([]string, error)
	CompleteChapter(userID, careerPath, chapter string) error
}

type BookingStore interface {
	SaveBooking(b models.Booking) error
	GetBookings(userID string) ([]models.Booking, error)
	DeleteBooking(userID, bookingID string) error
	BookedProfessionals(userID string) ([]string, error)
}

type SessionStore interface {
	SaveSnapshot(session models.Session) error
	GetSnapshot(sessionID string) (*models.Session, error)
	DeleteSnapshot(sessionID string) error
	PublishEvent(sessionID string, payload []byte) error

	// SubscribeEvents streams the session's published events until the
	// returned cancel function is called; the channel closes afterwards.
	SubscribeEvents(sessionID string) (<-chan []byte, func())
}

type Store interface {
	ProgressStore
	BookingStore
	SessionStore
}
