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

package integration

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/content"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/gateway"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/handlers"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/middleware"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/progress"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/relay"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/storage/postgres"
)

// Integration wires the whole platform API so it can be mounted on an
// existing router, either by our own server binary or by a host application
// embedding the platform.
type Integration struct {
	store           *postgres.Store
	hub             *relay.Hub
	catalog         *content.Catalog
	progressHandler *handlers.ProgressHandler
	contentHandler  *handlers.ContentHandler
	bookingHandler  *handlers.BookingHandler
	aiHandler       *handlers.AIHandler
	collabHandler   *handlers.CollabHandler
}

// Config holds the external dependencies of the platform.
type Config struct {
	DB     *sql.DB
	Redis  *redis.Client
	GenAI  *gateway.Client
}

func New(config *Config) (*Integration, error) {
	store := postgres.NewStore(config.DB, config.Redis)

	// Run migrations
	if err := store.Migrate(); err != nil {
		return nil, err
	}

	catalog := content.NewCatalog()
	tracker := progress.NewTracker(store)
	hub := relay.NewHub(store)

	return &Integration{
		store:           store,
		hub:             hub,
		catalog:         catalog,
		progressHandler: handlers.NewProgressHandler(tracker, store),
		contentHandler:  handlers.NewContentHandler(catalog),
		bookingHandler:  handlers.NewBookingHandler(store),
		aiHandler:       handlers.NewAIHandler(config.GenAI),
		collabHandler:   handlers.NewCollabHandler(hub, store),
	}, nil
}

// RegisterRoutes adds the platform routes to an existing router.
func (i *Integration) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.Identity)

	// Content catalog endpoints
	api.HandleFunc("/paths", i.contentHandler.ListPaths).Methods("GET", "OPTIONS")
	api.HandleFunc("/paths/{pathId}", i.contentHandler.GetPath).Methods("GET", "OPTIONS")
	api.HandleFunc("/paths/{pathId}/chapters", i.contentHandler.ListChapters).Methods("GET", "OPTIONS")
	api.HandleFunc("/paths/{pathId}/chapters/{chapter}", i.contentHandler.GetChapter).Methods("GET", "OPTIONS")
	api.HandleFunc("/questions/daily", i.contentHandler.DailyQuestions).Methods("GET", "OPTIONS")
	api.HandleFunc("/quotes/daily", i.contentHandler.DailyQuote).Methods("GET", "OPTIONS")

	// Skill analysis
	api.HandleFunc("/skills", i.contentHandler.ListSkills).Methods("GET", "OPTIONS")
	api.HandleFunc("/skills/analyze", i.contentHandler.AnalyzeSkills).Methods("POST", "OPTIONS")

	// Progress endpoints
	api.HandleFunc("/progress", i.progressHandler.GetProgress).Methods("GET", "OPTIONS")
	api.HandleFunc("/progress/complete", i.progressHandler.RecordCompletion).Methods("POST", "OPTIONS")
	api.HandleFunc("/progress/track", i.progressHandler.SwitchTrack).Methods("POST", "OPTIONS")
	api.HandleFunc("/progress/chapters", i.progressHandler.GetCompletedChapters).Methods("GET", "OPTIONS")
	api.HandleFunc("/progress/chapters", i.progressHandler.CompleteChapter).Methods("POST", "OPTIONS")

	// Booking endpoints
	api.HandleFunc("/bookings", i.bookingHandler.GetBookings).Methods("GET", "OPTIONS")
	api.HandleFunc("/bookings", i.bookingHandler.CreateBooking).Methods("POST", "OPTIONS")
	api.HandleFunc("/bookings/professionals", i.bookingHandler.BookedProfessionals).Methods("GET", "OPTIONS")
	api.HandleFunc("/bookings/{bookingId}", i.bookingHandler.CancelBooking).Methods("DELETE", "OPTIONS")

	// AI tool endpoints
	api.HandleFunc("/ai/chat", i.aiHandler.Chat).Methods("POST", "OPTIONS")
	api.HandleFunc("/ai/check", i.aiHandler.CheckCode).Methods("POST", "OPTIONS")
	api.HandleFunc("/ai/debug", i.aiHandler.DebugCode).Methods("POST", "OPTIONS")
	api.HandleFunc("/ai/convert", i.aiHandler.ConvertCode).Methods("POST", "OPTIONS")
	api.HandleFunc("/ai/plagiarism", i.aiHandler.DetectPlagiarism).Methods("POST", "OPTIONS")
	api.HandleFunc("/ai/resume", i.aiHandler.GenerateResume).Methods("POST", "OPTIONS")
	api.HandleFunc("/ai/cover-letter", i.aiHandler.GenerateCoverLetter).Methods("POST", "OPTIONS")

	// Collaboration session endpoints (reads and downloads; editing happens
	// over the relay connection)
	api.HandleFunc("/collab/sessions/{sessionId}", i.collabHandler.GetSession).Methods("GET", "OPTIONS")
	api.HandleFunc("/collab/sessions/{sessionId}/events", i.collabHandler.StreamEvents).Methods("GET", "OPTIONS")
	api.HandleFunc("/collab/sessions/{sessionId}/download", i.collabHandler.DownloadAll).Methods("GET", "OPTIONS")
	api.HandleFunc("/collab/sessions/{sessionId}/files/{fileId}/download", i.collabHandler.DownloadFile).Methods("GET", "OPTIONS")

	// Relay websocket endpoint
	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		relay.ServeWS(i.hub, w, r)
	})
}

// GetStore returns the underlying storage implementation.
func (i *Integration) GetStore() *postgres.Store {
	return i.store
}

// Hub returns the relay hub for host applications that serve the websocket
// endpoint themselves.
func (i *Integration) Hub() *relay.Hub {
	return i.hub
}
