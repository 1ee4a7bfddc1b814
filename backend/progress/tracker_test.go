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
	"testing"
	"time"

	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/models"
)

type fakeProgressStore struct {
	records map[string]*models.UserProgress
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: make(map[string]*models.UserProgress)}
}

func (s *fakeProgressStore) GetProgress(userID string) (*models.UserProgress, error) {
	if p, ok := s.records[userID]; ok {
		cp := *p
		cp.QuestionsCompleted = append([]string{}, p.QuestionsCompleted...)
		return &cp, nil
	}
	return &models.UserProgress{UserID: userID, QuestionsCompleted: []string{}}, nil
}

func (s *fakeProgressStore) ApplyCompletion(userID, questionID string, points, streak int, completedOn string) error {
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

func (s *fakeProgressStore) SwitchTrack(userID, careerPath string) error {
	s.records[userID] = &models.UserProgress{
		UserID:             userID,
		CareerPath:         careerPath,
		QuestionsCompleted: []string{},
	}
	return nil
}

func (s *fakeProgressStore) CompletedChapters(userID, careerPath string) ([]string, error) {
	return []string{}, nil
}

func (s *fakeProgressStore) CompleteChapter(userID, careerPath, chapter string) error {
	return nil
}

func trackerAt(store *fakeProgressStore, day string) *Tracker {
	t := NewTracker(store)
	t.now = func() time.Time {
		parsed, _ := time.Parse(dateLayout, day)
		return parsed
	}
	return t
}

func TestRecordCompletionScenario(t *testing.T) {
	store := newFakeProgressStore()

	// Day one: first completion starts the streak.
	tr := trackerAt(store, "2025-03-10")
	p, err := tr.RecordCompletion("u1", "sd-1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TotalPoints != 10 || p.CurrentStreak != 1 {
		t.Errorf("after first completion got points=%d streak=%d, want 10/1", p.TotalPoints, p.CurrentStreak)
	}

	// Second question the same day: points accrue, streak holds.
	p, err = tr.RecordCompletion("u1", "sd-2", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TotalPoints != 20 || p.CurrentStreak != 1 {
		t.Errorf("after second completion got points=%d streak=%d, want 20/1", p.TotalPoints, p.CurrentStreak)
	}

	// Repeating a completed question changes nothing.
	p, err = tr.RecordCompletion("u1", "sd-1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TotalPoints != 20 {
		t.Errorf("repeat completion changed points to %d, want 20", p.TotalPoints)
	}
	if len(p.QuestionsCompleted) != 2 {
		t.Errorf("repeat completion recorded again: %v", p.QuestionsCompleted)
	}

	// Next day extends the streak.
	tr = trackerAt(store, "2025-03-11")
	p, err = tr.RecordCompletion("u1", "web-1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CurrentStreak != 2 {
		t.Errorf("next-day completion got streak=%d, want 2", p.CurrentStreak)
	}

	// A skipped day resets the streak; points keep accruing.
	tr = trackerAt(store, "2025-03-13")
	p, err = tr.RecordCompletion("u1", "web-2", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CurrentStreak != 1 {
		t.Errorf("post-gap completion got streak=%d, want 1", p.CurrentStreak)
	}
	if p.TotalPoints != 40 {
		t.Errorf("post-gap completion got points=%d, want 40", p.TotalPoints)
	}
}

func TestSwitchTrackResetsEverything(t *testing.T) {
	store := newFakeProgressStore()
	tr := trackerAt(store, "2025-03-10")

	if _, err := tr.RecordCompletion("u1", "sd-1", 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := tr.SwitchTrack("u1", "web-dev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CareerPath != "web-dev" {
		t.Errorf("got career path %q, want web-dev", p.CareerPath)
	}
	if p.TotalPoints != 0 || p.CurrentStreak != 0 || len(p.QuestionsCompleted) != 0 {
		t.Errorf("switch kept old state: %+v", p)
	}

	stored, _ := store.GetProgress("u1")
	if stored.TotalPoints != 0 || len(stored.QuestionsCompleted) != 0 {
		t.Errorf("store kept old state after switch: %+v", stored)
	}
}

func TestNextStreak(t *testing.T) {
	tests := []struct {
		name    string
		current int
		last    string
		today   string
		want    int
	}{
		{"first ever", 0, "", "2025-03-10", 1},
		{"same day holds", 3, "2025-03-10", "2025-03-10", 3},
		{"same day floors at one", 0, "2025-03-10", "2025-03-10", 1},
		{"consecutive day increments", 3, "2025-03-09", "2025-03-10", 4},
		{"one day gap resets", 5, "2025-03-08", "2025-03-10", 1},
		{"long gap resets", 9, "2025-01-01", "2025-03-10", 1},
		{"month boundary", 2, "2025-02-28", "2025-03-01", 3},
		{"garbage last date resets", 4, "not-a-date", "2025-03-10", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStreak(tt.current, tt.last, tt.today); got != tt.want {
				t.Errorf("NextStreak(%d, %q, %q) = %d, want %d",
					tt.current, tt.last, tt.today, got, tt.want)
			}
		})
	}
}
