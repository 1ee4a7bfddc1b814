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

package content

import (
	"sort"
	"strings"
	"testing"
	"time"
)

func TestNormalizeChapter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Programming Fundamentals", "programming-fundamentals"},
		{"Version Control (Git)", "version-control-git"},
		{"Arrays and Strings", "arrays-and-strings"},
		{"  Spaced  Out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
	}

	for _, tt := range tests {
		if got := NormalizeChapter(tt.in); got != tt.want {
			t.Errorf("NormalizeChapter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPathLookup(t *testing.T) {
	c := NewCatalog()

	if len(c.Paths()) != 5 {
		t.Fatalf("got %d career paths, want 5", len(c.Paths()))
	}

	p := c.Path("software-dev")
	if p == nil {
		t.Fatal("software-dev path not found")
	}
	if p.Title != "Software Developer" {
		t.Errorf("got title %q", p.Title)
	}

	if c.Path("basket-weaving") != nil {
		t.Error("unknown path should be nil")
	}
}

func TestChapterAuthored(t *testing.T) {
	c := NewCatalog()

	ch := c.Chapter("software-dev", "Programming Fundamentals")
	if ch.Title != "Programming Fundamentals" {
		t.Errorf("got title %q", ch.Title)
	}
	if strings.Contains(ch.Content, "crucial for your development journey") {
		t.Error("authored chapter resolved to fallback content")
	}
}

func TestChapterFallback(t *testing.T) {
	c := NewCatalog()

	// No authored content for this chapter; the resolver synthesizes it.
	ch := c.Chapter("web-dev", "Quantum CSS")
	if ch.Title != "Quantum CSS" {
		t.Errorf("fallback title = %q, want the requested name", ch.Title)
	}
	if !strings.Contains(ch.Content, "Quantum CSS") {
		t.Error("fallback content does not mention the chapter")
	}
	if len(ch.Resources) == 0 || len(ch.Exercises) == 0 {
		t.Error("fallback chapter missing resources or exercises")
	}

	// Unknown path falls back the same way.
	ch = c.Chapter("no-such-path", "Anything")
	if ch.Title != "Anything" {
		t.Errorf("fallback title = %q, want Anything", ch.Title)
	}
}

func TestChapters(t *testing.T) {
	c := NewCatalog()

	chapters := c.Chapters("software-dev")
	if len(chapters) != 15 {
		t.Fatalf("got %d chapters, want 15", len(chapters))
	}
	// Curriculum order: beginner chapters first, advanced last.
	if chapters[0] != "Programming Fundamentals" {
		t.Errorf("first chapter = %q", chapters[0])
	}
	if chapters[len(chapters)-1] != "CI/CD Pipelines" {
		t.Errorf("last chapter = %q", chapters[len(chapters)-1])
	}

	if c.Chapters("no-such-path") != nil {
		t.Error("unknown path should yield nil")
	}
}

func TestSkills(t *testing.T) {
	c := NewCatalog()

	skills := c.Skills()
	if len(skills) == 0 {
		t.Fatal("no skills")
	}
	if !sort.StringsAreSorted(skills) {
		t.Error("skills not sorted")
	}

	seen := map[string]int{}
	for _, s := range skills {
		seen[s]++
	}
	// Python appears in several roles but must be listed once.
	if seen["Python"] != 1 {
		t.Errorf("Python listed %d times", seen["Python"])
	}
}

func TestMatchRoles(t *testing.T) {
	c := NewCatalog()

	matched := c.MatchRoles([]string{"python"})
	if len(matched) == 0 {
		t.Fatal("no roles matched for python")
	}
	titles := map[string]bool{}
	for _, r := range matched {
		titles[r.Title] = true
	}
	if !titles["Data Scientist"] || !titles["Backend Developer"] {
		t.Errorf("expected python roles missing: %v", titles)
	}
	if titles["UX Designer"] {
		t.Error("matched a role with no overlapping skill")
	}

	// Blank entries are ignored; whole-name matching only.
	if got := c.MatchRoles([]string{"", "  ", "Py"}); len(got) != 0 {
		t.Errorf("partial or blank skills matched %d roles", len(got))
	}
}

func TestDailyQuestions(t *testing.T) {
	c := NewCatalog()

	qs := c.DailyQuestions("software-dev", "")
	if len(qs) == 0 || len(qs) > 3 {
		t.Fatalf("got %d questions, want 1..3", len(qs))
	}
	for _, q := range qs {
		if q.CareerPath != "software-dev" {
			t.Errorf("question %s belongs to %s", q.ID, q.CareerPath)
		}
	}

	qs = c.DailyQuestions("software-dev", "easy")
	for _, q := range qs {
		if q.Difficulty != "easy" {
			t.Errorf("question %s has difficulty %s", q.ID, q.Difficulty)
		}
	}

	if qs = c.DailyQuestions("no-such-path", ""); len(qs) != 0 {
		t.Errorf("unknown path returned %d questions", len(qs))
	}
}

func TestDailyQuoteStableWithinDay(t *testing.T) {
	c := NewCatalog()

	morning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 10, 22, 30, 0, 0, time.UTC)
	nextDay := time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)

	if c.DailyQuote(morning) != c.DailyQuote(evening) {
		t.Error("quote changed within the same day")
	}
	if c.DailyQuote(morning).Text == "" {
		t.Error("empty quote")
	}
	// Different day picks the next quote in rotation.
	if c.DailyQuote(morning) == c.DailyQuote(nextDay) {
		t.Error("quote did not rotate to the next day")
	}
}
