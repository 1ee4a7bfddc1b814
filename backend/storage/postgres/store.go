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
	"database/sql"

	"github.com/redis/go-redis/v9"

	redisStore "github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/storage/redis"
)

// Store combines the durable Postgres tables (progress, bookings) with the
// ephemeral Redis session mirror behind a single storage.Store.
type Store struct {
	db       *sql.DB
	redis    *redis.Client
	sessions *redisStore.SessionStore
}

func NewStore(db *sql.DB, redis *redis.Client) *Store {
	return &Store{
		db:       db,
		redis:    redis,
		sessions: redisStore.NewSessionStore(redis),
	}
}
