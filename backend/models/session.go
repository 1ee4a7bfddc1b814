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

// Document is a named unit of editable text inside a collaboration session.
// Version is a server-assigned monotonic stamp; an edit is only accepted when
// it names the version it was based on.
type Document struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Version int    `json:"version"`
}

type Participant struct {
	ID       string    `json:"id"`
	IsHost   bool      `json:"is_host"`
	JoinedAt time.Time `json:"joined_at"`
}

// Session is the authoritative snapshot of one collaboration room. Exactly
// one participant holds the host flag while the session lives.
type Session struct {
	ID           string        `json:"session_id"`
	HostID       string        `json:"host_id"`
	Participants []Participant `json:"participants"`
	Documents    []Document    `json:"documents"`
	CreatedAt    time.Time     `json:"created_at"`
}

// DocumentByID returns the document with the given id, or nil.
func (s *Session) DocumentByID(id string) *Document {
	for i := range s.Documents {
		if s.Documents[i].ID == id {
			return &s.Documents[i]
		}
	}
	return nil
}
