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

	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/middleware"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/progress"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/storage"
)

type ProgressHandler struct {
	tracker *progress.Tracker
	store   storage.ProgressStore
}

func NewProgressHandler(tracker *progress.Tracker, store storage.ProgressStore) *ProgressHandler {
	return &ProgressHandler{tracker: tracker, store: store}
}

func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetClientID(r)

	p, err := h.store.GetProgress(userID)
	if err != nil {
		http.Error(w, "Failed to load progress", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

func (h *ProgressHandler) RecordCompletion(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetClientID(r)

	var req struct {
		QuestionID string `json:"question_id"`
		Points     int    `json:"points"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.QuestionID == "" {
		http.Error(w, "Invalid completion", http.StatusBadRequest)
		return
	}

	p, err := h.tracker.RecordCompletion(userID, req.QuestionID, req.Points)
	if err != nil {
		http.Error(w, "Failed to record completion", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

func (h *ProgressHandler) SwitchTrack(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetClientID(r)

	var req struct {
		CareerPath string `json:"career_path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CareerPath == "" {
		http.Error(w, "Invalid track", http.StatusBadRequest)
		return
	}

	p, err := h.tracker.SwitchTrack(userID, req.CareerPath)
	if err != nil {
		http.Error(w, "Failed to switch track", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

func (h *ProgressHandler) GetCompletedChapters(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetClientID(r)
	careerPath := r.URL.Query().Get("path")

	chapters, err := h.store.CompletedChapters(userID, careerPath)
	if err != nil {
		http.Error(w, "Failed to load chapters", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"career_path": careerPath,
		"chapters":    chapters,
	})
}

func (h *ProgressHandler) CompleteChapter(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetClientID(r)

	var req struct {
		CareerPath string `json:"career_path"`
		Chapter    string `json:"chapter"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Chapter == "" {
		http.Error(w, "Invalid chapter", http.StatusBadRequest)
		return
	}

	if err := h.store.CompleteChapter(userID, req.CareerPath, req.Chapter); err != nil {
		http.Error(w, "Failed to complete chapter", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "completed"})
}
