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

type CareerPath struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Levels      ChapterLevel `json:"levels"`
}

type ChapterLevel struct {
	Beginner     []string `json:"beginner"`
	Intermediate []string `json:"intermediate"`
	Advanced     []string `json:"advanced"`
}

// All returns every chapter of the path in curriculum order.
func (l ChapterLevel) All() []string {
	out := make([]string, 0, len(l.Beginner)+len(l.Intermediate)+len(l.Advanced))
	out = append(out, l.Beginner...)
	out = append(out, l.Intermediate...)
	out = append(out, l.Advanced...)
	return out
}

type ChapterContent struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	Resources   []Resource `json:"resources"`
	Exercises   []Exercise `json:"exercises"`
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"` // video, article, tutorial, course
}

type Exercise struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Question struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  string     `json:"difficulty"` // easy, medium, hard
	Category    string     `json:"category"`
	Points      int        `json:"points"`
	Hints       []string   `json:"hints"`
	TestCases   []TestCase `json:"test_cases,omitempty"`
	CareerPath  string     `json:"career_path"`
}

type TestCase struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation"`
}

// Role is one career role in the skill-analysis table, matched against the
// skills a user reports.
type Role struct {
	Title  string   `json:"role"`
	Skills []string `json:"skills"`
}

type Quote struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}
