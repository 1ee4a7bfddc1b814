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
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/middleware"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/models"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/progress"
)

type memProgressStore struct {
	records map[string]*models.UserProgress
}

func newMemProgressStore() *memProgressStore {
	return &memProgressStore{records: make(map[string]*models.UserProgress)}
}

func (s *memProgressStore) GetProgress(userID string) (*models.UserProgress, error) {
	if p, ok := s.records[userID]; ok {
		cp := *p
		cp.QuestionsCompleted = append([]string{}, p.QuestionsCompleted...)
		return &cp, nil
	}
	return &models.UserProgress{UserID: userID, QuestionsCompleted: []string{}}, nil
}

func (s *memProgressStore) ApplyCompletion(userID, questionID string, points, streak int, completedOn string) error {
	p, ok := s.records[userID]
	if !ok {
		p = &models.UserProgress{UserID: userID, QuestionsCompleted: []string{}}
		s.records[userID] = p
	}
	p.TotalPoints += points
	p.CurrentStreak = streak
	p.LastCompletedDate = completedOn
	p.QuestionsCompleted = append(p.QuestionsCompleted, questionID)
	return nil
}

func (s *memProgressStore) SwitchTrack(userID, careerPath string) error {
	s.records[userID] = &models.UserProgress{
		UserID:             userID,
		CareerPath:         careerPath,
		QuestionsCompleted: []string{},
	}
	return nil
}

func (s *memProgressStore) CompletedChapters(userID, careerPath string) ([]string, error) {
	return []string{"arrays-and-strings"}, nil
}

func (s *memProgressStore) CompleteChapter(userID, careerPath, chapter string) error {
	return nil
}

// do runs one request through the identity middleware as the given user.
func do(handler http.HandlerFunc, method, target, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(middleware.ClientIDHeader, userID)
	rec := httptest.NewRecorder()
	middleware.Identity(handler).ServeHTTP(rec, req)
	return rec
}

func TestGetProgressEmpty(t *testing.T) {
	store := newMemProgressStore()
	h := NewProgressHandler(progress.NewTracker(store), store)

	rec := do(h.GetProgress, "GET", "/api/progress", "u1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var p models.UserProgress
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, 0, p.TotalPoints)
	assert.NotNil(t, p.QuestionsCompleted)
}

func TestRecordCompletion(t *testing.T) {
	store := newMemProgressStore()
	h := NewProgressHandler(progress.NewTracker(store), store)

	rec := do(h.RecordCompletion, "POST", "/api/progress/complete", "u1",
		`{"question_id": "sd-1", "points": 10}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var p models.UserProgress
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, 10, p.TotalPoints)
	assert.Equal(t, 1, p.CurrentStreak)
	assert.Contains(t, p.QuestionsCompleted, "sd-1")

	// Repeating the completion is a no-op.
	rec = do(h.RecordCompletion, "POST", "/api/progress/complete", "u1",
		`{"question_id": "sd-1", "points": 10}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, 10, p.TotalPoints)
}

func TestRecordCompletionValidation(t *testing.T) {
	store := newMemProgressStore()
	h := NewProgressHandler(progress.NewTracker(store), store)

	rec := do(h.RecordCompletion, "POST", "/api/progress/complete", "u1", `{"points": 10}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h.RecordCompletion, "POST", "/api/progress/complete", "u1", "not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSwitchTrack(t *testing.T) {
	store := newMemProgressStore()
	h := NewProgressHandler(progress.NewTracker(store), store)

	do(h.RecordCompletion, "POST", "/api/progress/complete", "u1",
		`{"question_id": "sd-1", "points": 10}`)

	rec := do(h.SwitchTrack, "POST", "/api/progress/track", "u1", `{"career_path": "web-dev"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var p models.UserProgress
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "web-dev", p.CareerPath)
	assert.Equal(t, 0, p.TotalPoints)
	assert.Empty(t, p.QuestionsCompleted)
}

func TestCompletedChapters(t *testing.T) {
	store := newMemProgressStore()
	h := NewProgressHandler(progress.NewTracker(store), store)

	rec := do(h.GetCompletedChapters, "GET", "/api/progress/chapters?path=dsa", "u1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		CareerPath string   `json:"career_path"`
		Chapters   []string `json:"chapters"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "dsa", resp.CareerPath)
	assert.Contains(t, resp.Chapters, "arrays-and-strings")
}

func TestCompleteChapterValidation(t *testing.T) {
	store := newMemProgressStore()
	h := NewProgressHandler(progress.NewTracker(store), store)

	rec := do(h.CompleteChapter, "POST", "/api/progress/chapters", "u1",
		`{"career_path": "dsa"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h.CompleteChapter, "POST", "/api/progress/chapters", "u1",
		`{"career_path": "dsa", "chapter": "linked-lists"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdentityAssignsID(t *testing.T) {
	store := newMemProgressStore()
	h := NewProgressHandler(progress.NewTracker(store), store)

	// No client id presented; the middleware mints one and echoes it.
	req := httptest.NewRequest("GET", "/api/progress", nil)
	rec := httptest.NewRecorder()
	middleware.Identity(http.HandlerFunc(h.GetProgress)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.ClientIDHeader))
}
