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
	"bufio"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/models"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/relay"
)

type memSessionStore struct {
	snapshots map[string]models.Session
	events    chan []byte
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{
		snapshots: make(map[string]models.Session),
		events:    make(chan []byte, 8),
	}
}

func (s *memSessionStore) SaveSnapshot(session models.Session) error {
	s.snapshots[session.ID] = session
	return nil
}

func (s *memSessionStore) GetSnapshot(sessionID string) (*models.Session, error) {
	if snap, ok := s.snapshots[sessionID]; ok {
		return &snap, nil
	}
	return nil, nil
}

func (s *memSessionStore) DeleteSnapshot(sessionID string) error {
	delete(s.snapshots, sessionID)
	return nil
}

func (s *memSessionStore) PublishEvent(sessionID string, payload []byte) error {
	return nil
}

func (s *memSessionStore) SubscribeEvents(sessionID string) (<-chan []byte, func()) {
	return s.events, func() {}
}

func collabServer(t *testing.T, store *memSessionStore) *httptest.Server {
	t.Helper()
	h := NewCollabHandler(relay.NewHub(store), store)
	r := mux.NewRouter()
	r.HandleFunc("/api/collab/sessions/{sessionId}", h.GetSession).Methods("GET")
	r.HandleFunc("/api/collab/sessions/{sessionId}/events", h.StreamEvents).Methods("GET")
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestGetSessionNotFound(t *testing.T) {
	srv := collabServer(t, newMemSessionStore())

	resp, err := http.Get(srv.URL + "/api/collab/sessions/nope1234")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStreamEvents(t *testing.T) {
	store := newMemSessionStore()
	store.snapshots["sess1234"] = models.Session{ID: "sess1234", HostID: "h1"}
	store.events <- []byte(`{"type":"fileUpdated","sessionId":"sess1234"}`)
	srv := collabServer(t, store)

	resp, err := http.Get(srv.URL + "/api/collab/sessions/sess1234/events")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, "data: "), "got %q", line)
	assert.Contains(t, line, "fileUpdated")
}

func TestStreamEventsUnknownSession(t *testing.T) {
	srv := collabServer(t, newMemSessionStore())

	resp, err := http.Get(srv.URL + "/api/collab/sessions/ghost123/events")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
