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

package relay

import (
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/models"
)

// Envelope is the single wire message shape, client and server alike:
// {type, sessionId, ...payload}. Unused fields are omitted.
type Envelope struct {
	Type          string           `json:"type"`
	SessionID     string           `json:"sessionId,omitempty"`
	ParticipantID string           `json:"participantId,omitempty"`
	HostID        string           `json:"hostId,omitempty"`
	FileID        string           `json:"fileId,omitempty"`
	Name          string           `json:"name,omitempty"`
	Content       string           `json:"content,omitempty"`
	Version       int              `json:"version,omitempty"`
	File          *models.Document `json:"file,omitempty"`
	Session       *models.Session  `json:"session,omitempty"`
	Error         string           `json:"error,omitempty"`
}

// Client-to-relay envelope types.
const (
	TypeCreateRoom = "createRoom"
	TypeJoinRoom   = "joinRoom"
	TypeLeaveRoom  = "leaveRoom"
	TypeCloseRoom  = "closeRoom"
	TypeFileAdded  = "fileAdded"
	TypeFileUpdate = "fileUpdate"
)

// Relay-to-client envelope types. roomJoined is the explicit join
// acknowledgment; updateRejected carries the authoritative document when an
// edit named a stale version.
const (
	TypeRoomCreated       = "roomCreated"
	TypeRoomJoined        = "roomJoined"
	TypeParticipantJoined = "participantJoined"
	TypeParticipantLeft   = "participantLeft"
	TypeFileUpdated       = "fileUpdated"
	TypeUpdateRejected    = "updateRejected"
	TypeHostChanged       = "hostChanged"
	TypeRoomClosed        = "roomClosed"
	TypeError             = "error"
)
