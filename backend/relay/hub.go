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
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/metrics"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/models"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/storage"
)

// Hub is the authority for all live collaboration sessions. Every document
// carries a monotonic version; an edit is accepted only when it names the
// current version, so concurrent stale writes are rejected instead of
// silently discarded. Snapshots are mirrored to the session store after each
// mutation; the mirror never blocks relay traffic.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*room
	store    storage.SessionStore
	mirror   chan mirrorOp
}

// mirrorOp is one deferred store write. Exactly one of the fields is set.
// A single goroutine applies ops in order, so snapshots never land out of
// sequence and a slow store call never runs under the hub lock.
type mirrorOp struct {
	save      *models.Session
	deleteID  string
	publishID string
	payload   []byte
}

type room struct {
	id        string
	hostID    string
	clients   []*Client // join order, oldest first
	joined    map[string]time.Time
	documents []*models.Document
	createdAt time.Time
}

const defaultDocumentContent = "// Start coding here"

func NewHub(store storage.SessionStore) *Hub {
	h := &Hub{
		sessions: make(map[string]*room),
		store:    store,
		mirror:   make(chan mirrorOp, 512),
	}
	go h.runMirror()
	return h
}

func (h *Hub) runMirror() {
	for op := range h.mirror {
		switch {
		case op.save != nil:
			if err := h.store.SaveSnapshot(*op.save); err != nil {
				log.Printf("Failed to store snapshot for session %s: %v", op.save.ID, err)
			}
		case op.deleteID != "":
			if err := h.store.DeleteSnapshot(op.deleteID); err != nil {
				log.Printf("Failed to delete snapshot for session %s: %v", op.deleteID, err)
			}
		case op.publishID != "":
			if err := h.store.PublishEvent(op.publishID, op.payload); err != nil {
				log.Printf("Failed to publish event for session %s: %v", op.publishID, err)
			}
		}
	}
}

// enqueueMirror never blocks; when the queue is full the write is dropped and
// the in-memory state stays authoritative.
func (h *Hub) enqueueMirror(op mirrorOp) {
	select {
	case h.mirror <- op:
	default:
		log.Printf("Mirror queue full, dropping store write")
	}
}

// Handle dispatches one inbound envelope from a connected client.
func (h *Hub) Handle(c *Client, env Envelope) {
	metrics.RelayMessages.WithLabelValues(env.Type).Inc()

	h.mu.Lock()
	defer h.mu.Unlock()

	switch env.Type {
	case TypeCreateRoom:
		h.createRoom(c)
	case TypeJoinRoom:
		h.joinRoom(c, env)
	case TypeLeaveRoom:
		h.leaveRoom(c)
	case TypeCloseRoom:
		h.closeRoom(c)
	case TypeFileAdded:
		h.addFile(c, env)
	case TypeFileUpdate:
		h.updateFile(c, env)
	default:
		h.errorTo(c, "unknown message type: "+env.Type)
	}
}

// Disconnect removes a dropped connection. Connection loss and an explicit
// leave are treated as the same departure event.
func (h *Hub) Disconnect(c *Client) {
	h.mu.Lock()
	if c.sessionID != "" {
		h.removeFromRoom(c)
	}
	close(c.send)
	h.mu.Unlock()
}

// Snapshot returns the current state of a session, falling back to the
// store's mirror when the session is not live on this hub.
func (h *Hub) Snapshot(sessionID string) (*models.Session, error) {
	h.mu.Lock()
	if r, ok := h.sessions[sessionID]; ok {
		snap := h.snapshot(r)
		h.mu.Unlock()
		return &snap, nil
	}
	h.mu.Unlock()
	return h.store.GetSnapshot(sessionID)
}

func (h *Hub) createRoom(c *Client) {
	if c.sessionID != "" {
		h.errorTo(c, "already in a session")
		return
	}

	code := h.newSessionCode()
	r := &room{
		id:     code,
		hostID: c.ID,
		clients: []*Client{
			c,
		},
		joined: map[string]time.Time{c.ID: time.Now()},
		documents: []*models.Document{
			{ID: uuid.New().String(), Name: "main.js", Content: defaultDocumentContent, Version: 1},
		},
		createdAt: time.Now(),
	}
	h.sessions[code] = r
	c.sessionID = code
	metrics.RelaySessions.Inc()

	snap := h.snapshot(r)
	h.persist(r)
	h.sendTo(c, Envelope{Type: TypeRoomCreated, SessionID: code, Session: &snap})
}

// newSessionCode generates a short join code, regenerating on the unlikely
// collision with a live session.
func (h *Hub) newSessionCode() string {
	for {
		code := uuid.New().String()[:8]
		if _, exists := h.sessions[code]; !exists {
			return code
		}
	}
}

func (h *Hub) joinRoom(c *Client, env Envelope) {
	if c.sessionID != "" {
		h.errorTo(c, "already in a session")
		return
	}

	r, ok := h.sessions[env.SessionID]
	if !ok {
		// An unknown code is answered explicitly; the client must not be
		// left in a joined-but-empty state.
		h.errorTo(c, "session not found: "+env.SessionID)
		return
	}

	r.clients = append(r.clients, c)
	r.joined[c.ID] = time.Now()
	c.sessionID = r.id

	h.broadcast(r, Envelope{Type: TypeParticipantJoined, SessionID: r.id, ParticipantID: c.ID}, c)

	snap := h.snapshot(r)
	h.persist(r)
	h.sendTo(c, Envelope{Type: TypeRoomJoined, SessionID: r.id, Session: &snap})
}

func (h *Hub) leaveRoom(c *Client) {
	if c.sessionID == "" {
		h.errorTo(c, "not in a session")
		return
	}
	h.removeFromRoom(c)
}

// removeFromRoom takes one participant out of its session, transferring the
// host flag to the longest-present remaining participant and destroying the
// session when nobody is left.
func (h *Hub) removeFromRoom(c *Client) {
	r, ok := h.sessions[c.sessionID]
	if !ok {
		c.sessionID = ""
		return
	}

	for i, member := range r.clients {
		if member == c {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			break
		}
	}
	delete(r.joined, c.ID)
	wasHost := r.hostID == c.ID
	c.sessionID = ""

	if len(r.clients) == 0 {
		h.destroyRoom(r)
		return
	}

	h.broadcast(r, Envelope{Type: TypeParticipantLeft, SessionID: r.id, ParticipantID: c.ID}, nil)

	if wasHost {
		r.hostID = r.clients[0].ID
		h.broadcast(r, Envelope{Type: TypeHostChanged, SessionID: r.id, HostID: r.hostID}, nil)
	}
	h.persist(r)
}

func (h *Hub) closeRoom(c *Client) {
	if c.sessionID == "" {
		h.errorTo(c, "not in a session")
		return
	}
	r := h.sessions[c.sessionID]
	if r == nil {
		c.sessionID = ""
		return
	}
	if r.hostID != c.ID {
		h.errorTo(c, "only the host can close a session")
		return
	}

	h.broadcast(r, Envelope{Type: TypeRoomClosed, SessionID: r.id}, nil)
	for _, member := range r.clients {
		member.sessionID = ""
	}
	r.clients = nil
	h.destroyRoom(r)
}

func (h *Hub) destroyRoom(r *room) {
	delete(h.sessions, r.id)
	metrics.RelaySessions.Dec()
	h.enqueueMirror(mirrorOp{deleteID: r.id})
}

func (h *Hub) addFile(c *Client, env Envelope) {
	r := h.roomOf(c)
	if r == nil {
		return
	}
	if env.Name == "" {
		h.errorTo(c, "file name required")
		return
	}

	id := env.FileID
	if id == "" {
		id = uuid.New().String()
	}
	for _, doc := range r.documents {
		if doc.ID == id {
			h.errorTo(c, "file already exists: "+id)
			return
		}
	}

	doc := &models.Document{ID: id, Name: env.Name, Content: env.Content, Version: 1}
	r.documents = append(r.documents, doc)

	h.broadcast(r, Envelope{Type: TypeFileAdded, SessionID: r.id, File: doc}, nil)
	h.persist(r)
}

func (h *Hub) updateFile(c *Client, env Envelope) {
	r := h.roomOf(c)
	if r == nil {
		return
	}

	var doc *models.Document
	for _, d := range r.documents {
		if d.ID == env.FileID {
			doc = d
			break
		}
	}
	if doc == nil {
		h.errorTo(c, "unknown file: "+env.FileID)
		return
	}

	if env.Version != doc.Version {
		// Stale base version. The editor gets the authoritative content
		// back so it can rebase; nothing is broadcast.
		h.sendTo(c, Envelope{
			Type:      TypeUpdateRejected,
			SessionID: r.id,
			FileID:    doc.ID,
			Content:   doc.Content,
			Version:   doc.Version,
		})
		return
	}

	doc.Content = env.Content
	doc.Version++

	h.broadcast(r, Envelope{
		Type:      TypeFileUpdated,
		SessionID: r.id,
		FileID:    doc.ID,
		Content:   doc.Content,
		Version:   doc.Version,
	}, nil)
	h.persist(r)
}

func (h *Hub) roomOf(c *Client) *room {
	if c.sessionID == "" {
		h.errorTo(c, "not in a session")
		return nil
	}
	r := h.sessions[c.sessionID]
	if r == nil {
		h.errorTo(c, "not in a session")
	}
	return r
}

// broadcast delivers an envelope to every participant except the excluded
// one and forwards it to the session's event channel. A participant whose
// send buffer is full gets its connection closed; the read pump cleans up.
func (h *Hub) broadcast(r *room, env Envelope, except *Client) {
	payload, err := json.Marshal(env)
	if err != nil {
		log.Printf("Error encoding envelope: %v", err)
		return
	}

	for _, member := range r.clients {
		if member == except {
			continue
		}
		if !member.enqueue(payload) {
			member.conn.Close()
		}
	}

	h.enqueueMirror(mirrorOp{publishID: r.id, payload: payload})
}

func (h *Hub) sendTo(c *Client, env Envelope) {
	payload, err := json.Marshal(env)
	if err != nil {
		log.Printf("Error encoding envelope: %v", err)
		return
	}
	if !c.enqueue(payload) {
		c.conn.Close()
	}
}

func (h *Hub) errorTo(c *Client, msg string) {
	h.sendTo(c, Envelope{Type: TypeError, Error: msg})
}

func (h *Hub) snapshot(r *room) models.Session {
	snap := models.Session{
		ID:        r.id,
		HostID:    r.hostID,
		CreatedAt: r.createdAt,
	}
	for _, member := range r.clients {
		snap.Participants = append(snap.Participants, models.Participant{
			ID:       member.ID,
			IsHost:   member.ID == r.hostID,
			JoinedAt: r.joined[member.ID],
		})
	}
	for _, doc := range r.documents {
		snap.Documents = append(snap.Documents, *doc)
	}
	return snap
}

// persist mirrors the room to the session store. The snapshot is taken under
// the hub lock; the write itself happens on the mirror goroutine.
func (h *Hub) persist(r *room) {
	snap := h.snapshot(r)
	h.enqueueMirror(mirrorOp{save: &snap})
}
