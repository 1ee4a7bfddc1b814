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

package progress

import (
	"time"

	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/models"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/storage"
)

const dateLayout = "2006-01-02"

// Tracker derives streaks, points and completion state from recorded
// completion events. It owns the calendar rules; the store only persists.
type Tracker struct {
	store storage.ProgressStore

	// overridable clock for tests
	now func() time.Time
}

func NewTracker(store storage.ProgressStore) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// RecordCompletion records one completed question. It is idempotent:
// recording an already-completed question changes nothing, points included.
// The returned progress reflects the state after the call.
func (t *Tracker) RecordCompletion(userID, questionID string, points int) (*models.UserProgress, error) {
	p, err := t.store.GetProgress(userID)
	if err != nil {
		return nil, err
	}
	if p.Completed(questionID) {
		return p, nil
	}

	today := t.now().Format(dateLayout)
	streak := NextStreak(p.CurrentStreak, p.LastCompletedDate, today)

	if err := t.store.ApplyCompletion(userID, questionID, points, streak, today); err != nil {
		return nil, err
	}

	p.TotalPoints += points
	p.CurrentStreak = streak
	p.LastCompletedDate = today
	p.QuestionsCompleted = append(p.QuestionsCompleted, questionID)
	return p, nil
}

// SwitchTrack resets points, streak and completion state and activates the
// new track. A single track is active at a time; prior data is discarded.
func (t *Tracker) SwitchTrack(userID, careerPath string) (*models.UserProgress, error) {
	if err := t.store.SwitchTrack(userID, careerPath); err != nil {
		return nil, err
	}
	return &models.UserProgress{
		UserID:             userID,
		CareerPath:         careerPath,
		QuestionsCompleted: []string{},
	}, nil
}

// NextStreak applies the calendar rules to a completion happening on `today`:
// unchanged if something was already completed today, incremented if the last
// completion was exactly yesterday, reset to 1 after any gap (or on the first
// completion ever). Dates are YYYY-MM-DD strings on the local calendar.
func NextStreak(current int, lastCompleted, today string) int {
	if lastCompleted == today {
		if current < 1 {
			return 1
		}
		return current
	}

	last, err := time.Parse(dateLayout, lastCompleted)
	if err != nil {
		return 1
	}
	day, err := time.Parse(dateLayout, today)
	if err != nil {
		return 1
	}

	if last.AddDate(0, 0, 1).Equal(day) {
		return current + 1
	}
	return 1
}
