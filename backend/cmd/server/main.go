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

package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/gateway"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/integration"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/middleware"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	// Database connection
	dbURL := getEnv("DATABASE_URL", "postgres://localhost/codexprt?sslmode=disable")
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: getEnv("REDIS_URL", "localhost:6379"),
	})

	// Generative-language API client
	apiKey := os.Getenv("GENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("GENAI_API_KEY environment variable is required")
	}
	genai := gateway.NewClient(
		getEnv("GENAI_URL", "https://generativelanguage.googleapis.com"),
		getEnv("GENAI_MODEL", "gemini-2.0-flash"),
		apiKey,
	)

	// Wire the platform
	platform, err := integration.New(&integration.Config{
		DB:    db,
		Redis: rdb,
		GenAI: genai,
	})
	if err != nil {
		log.Fatalf("Failed to initialize platform: %v", err)
	}

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.CORS)
	platform.RegisterRoutes(r)

	// Metrics
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Health check (no identity required)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Database unavailable"))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	port := getEnv("PORT", "8081")
	log.Printf("CodeXprt server starting on port %s", port)

	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
