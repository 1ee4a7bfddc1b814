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
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/content"
)

type ContentHandler struct {
	catalog *content.Catalog
}

func NewContentHandler(catalog *content.Catalog) *ContentHandler {
	return &ContentHandler{catalog: catalog}
}

func (h *ContentHandler) ListPaths(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.catalog.Paths())
}

func (h *ContentHandler) GetPath(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	path := h.catalog.Path(vars["pathId"])
	if path == nil {
		http.Error(w, "Career path not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(path)
}

// ListChapters returns the path's roadmap in curriculum order.
func (h *ContentHandler) ListChapters(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chapters := h.catalog.Chapters(vars["pathId"])
	if chapters == nil {
		http.Error(w, "Career path not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"path":     vars["pathId"],
		"chapters": chapters,
	})
}

// GetChapter always answers with content: authored when it exists, a
// synthesized fallback otherwise.
func (h *ContentHandler) GetChapter(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chapter := h.catalog.Chapter(vars["pathId"], vars["chapter"])

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chapter)
}

func (h *ContentHandler) DailyQuestions(w http.ResponseWriter, r *http.Request) {
	pathID := r.URL.Query().Get("path")
	difficulty := r.URL.Query().Get("difficulty")
	if pathID == "" {
		http.Error(w, "path query parameter required", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.catalog.DailyQuestions(pathID, difficulty))
}

func (h *ContentHandler) DailyQuote(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.catalog.DailyQuote(time.Now()))
}

func (h *ContentHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"skills": h.catalog.Skills(),
	})
}

// AnalyzeSkills matches the submitted skills against the role table.
func (h *ContentHandler) AnalyzeSkills(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Skills []string `json:"skills"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	any := false
	for _, skill := range req.Skills {
		if strings.TrimSpace(skill) != "" {
			any = true
			break
		}
	}
	if !any {
		http.Error(w, "At least one skill is required", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"roles": h.catalog.MatchRoles(req.Skills),
	})
}
