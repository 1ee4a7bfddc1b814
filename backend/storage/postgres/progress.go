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
	"time"

	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/models"
)

// GetProgress assembles the progress row and the completed-question set.
// An absent row is not an error: callers always get a usable zero record.
func (s *Store) GetProgress(userID string) (*models.UserProgress, error) {
	progress := &models.UserProgress{
		UserID:             userID,
		QuestionsCompleted: []string{},
	}

	err := s.db.QueryRow(`
		SELECT career_path, total_points, current_streak, last_completed_date
		FROM user_progress WHERE user_id = $1`, userID).Scan(
		&progress.CareerPath, &progress.TotalPoints,
		&progress.CurrentStreak, &progress.LastCompletedDate)
	if err == sql.ErrNoRows {
		return progress, nil
	} else if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT question_id FROM completed_questions
		WHERE user_id = $1 ORDER BY completed_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		progress.QuestionsCompleted = append(progress.QuestionsCompleted, id)
	}
	return progress, rows.Err()
}

// ApplyCompletion records one completed question and the derived streak and
// point totals. Re-recording an already-completed question is a no-op.
func (s *Store) ApplyCompletion(userID, questionID string, points, streak int, completedOn string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO completed_questions (user_id, question_id, completed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, question_id) DO NOTHING`,
		userID, questionID, time.Now())
	if err != nil {
		return err
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if inserted == 0 {
		// Already completed, points must not be awarded twice
		return tx.Commit()
	}

	_, err = tx.Exec(`
		INSERT INTO user_progress (user_id, career_path, total_points, current_streak, last_completed_date)
		VALUES ($1, '', $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET total_points = user_progress.total_points + $2,
		    current_streak = $3,
		    last_completed_date = $4`,
		userID, points, streak, completedOn)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// SwitchTrack resets all progress for the user and records the new active
// track. Prior track data is not retained.
func (s *Store) SwitchTrack(userID, careerPath string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO user_progress (user_id, career_path, total_points, current_streak, last_completed_date)
		VALUES ($1, $2, 0, 0, '')
		ON CONFLICT (user_id) DO UPDATE
		SET career_path = $2, total_points = 0, current_streak = 0, last_completed_date = ''`,
		userID, careerPath)
	if err != nil {
		return err
	}

	if _, err = tx.Exec(`DELETE FROM completed_questions WHERE user_id = $1`, userID); err != nil {
		return err
	}
	if _, err = tx.Exec(`DELETE FROM completed_chapters WHERE user_id = $1`, userID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) CompletedChapters(userID, careerPath string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT chapter FROM completed_chapters
		WHERE user_id = $1 AND career_path = $2
		ORDER BY completed_at`, userID, careerPath)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chapters := []string{}
	for rows.Next() {
		var chapter string
		if err := rows.Scan(&chapter); err != nil {
			return nil, err
		}
		chapters = append(chapters, chapter)
	}
	return chapters, rows.Err()
}

func (s *Store) CompleteChapter(userID, careerPath, chapter string) error {
	_, err := s.db.Exec(`
		INSERT INTO completed_chapters (user_id, career_path, chapter, completed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, career_path, chapter) DO NOTHING`,
		userID, careerPath, chapter, time.Now())
	return err
}
