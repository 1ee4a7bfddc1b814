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

package models

// UserProgress tracks a user's standing on their single active career track.
// LastCompletedDate is a local calendar day in YYYY-MM-DD form; an empty
// string means no completion has ever been recorded.
type UserProgress struct {
	UserID             string   `json:"user_id" db:"user_id"`
	CareerPath         string   `json:"career_path" db:"career_path"`
	TotalPoints        int      `json:"total_points" db:"total_points"`
	QuestionsCompleted []string `json:"questions_completed"`
	CurrentStreak      int      `json:"current_streak" db:"current_streak"`
	LastCompletedDate  string   `json:"last_completed_date" db:"last_completed_date"`
}

// Completed reports whether the given question has already been recorded.
func (p *UserProgress) Completed(questionID string) bool {
	for _, id := range p.QuestionsCompleted {
		if id == questionID {
			return true
		}
	}
	return false
}
