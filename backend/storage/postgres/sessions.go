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
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/models"
)

// Session snapshots live in Redis; these methods delegate to the mirror so
// that Store satisfies storage.SessionStore.

func (s *Store) SaveSnapshot(session models.Session) error {
	return s.sessions.SaveSnapshot(session)
}

func (s *Store) GetSnapshot(sessionID string) (*models.Session, error) {
	return s.sessions.GetSnapshot(sessionID)
}

func (s *Store) DeleteSnapshot(sessionID string) error {
	return s.sessions.DeleteSnapshot(sessionID)
}

func (s *Store) PublishEvent(sessionID string, payload []byte) error {
	return s.sessions.PublishEvent(sessionID, payload)
}

func (s *Store) SubscribeEvents(sessionID string) (<-chan []byte, func()) {
	return s.sessions.SubscribeEvents(sessionID)
}
