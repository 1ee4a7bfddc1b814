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

func (s *Store) Migrate() error {
	migrations := []string{
		// One progress row per user; a user has a single active track at a
		// time and switching tracks resets the row.
		`CREATE TABLE IF NOT EXISTS user_progress (
			user_id VARCHAR(255) PRIMARY KEY,
			career_path VARCHAR(255) NOT NULL DEFAULT '',
			total_points INTEGER NOT NULL DEFAULT 0,
			current_streak INTEGER NOT NULL DEFAULT 0,
			last_completed_date VARCHAR(10) NOT NULL DEFAULT ''
		)`,

		// Completed practice questions; the primary key is what makes
		// completion recording idempotent.
		`CREATE TABLE IF NOT EXISTS completed_questions (
			user_id VARCHAR(255) NOT NULL,
			question_id VARCHAR(255) NOT NULL,
			completed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, question_id)
		)`,

		// Completed roadmap chapters, keyed per track so switching tracks
		// starts a fresh roadmap.
		`CREATE TABLE IF NOT EXISTS completed_chapters (
			user_id VARCHAR(255) NOT NULL,
			career_path VARCHAR(255) NOT NULL,
			chapter VARCHAR(255) NOT NULL,
			completed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, career_path, chapter)
		)`,

		// Mentor session bookings
		`CREATE TABLE IF NOT EXISTS bookings (
			booking_id VARCHAR(255) PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			professional_id VARCHAR(255) NOT NULL,
			professional_name VARCHAR(255) NOT NULL,
			topic TEXT NOT NULL DEFAULT '',
			scheduled_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_user_bookings
		ON bookings(user_id, scheduled_at)`,

		// One active booking per professional per user, enforced at the
		// database so concurrent requests cannot double-book. Cancelling
		// deletes the row and frees the professional.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_user_professional
		ON bookings(user_id, professional_id)`,

		// Note: collaboration session snapshots are stored in Redis; they
		// are ephemeral and expire on their own.
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
