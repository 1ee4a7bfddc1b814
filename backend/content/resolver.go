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
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/models"
)

var chapterSlug = regexp.MustCompile(`[\s()]+`)

// NormalizeChapter turns a display chapter name into its lookup slug:
// lowercase, with runs of whitespace and parentheses collapsed to hyphens.
func NormalizeChapter(chapter string) string {
	return strings.Trim(chapterSlug.ReplaceAllString(strings.ToLower(chapter), "-"), "-")
}

// Catalog resolves career paths, chapters, questions and quotes from the
// immutable in-memory tables. All lookups are read-only and safe for
// concurrent use.
type Catalog struct {
	paths    []models.CareerPath
	chapters map[string]map[string]models.ChapterContent
	quests   []models.Question
	quotes   []models.Quote
	roles    []models.Role
}

func NewCatalog() *Catalog {
	return &Catalog{
		paths:    careerPaths,
		chapters: chapterContent,
		quests:   questions,
		quotes:   quotes,
		roles:    roles,
	}
}

func (c *Catalog) Paths() []models.CareerPath {
	return c.paths
}

// Path returns the career path with the given id, or nil.
func (c *Catalog) Path(pathID string) *models.CareerPath {
	for i := range c.paths {
		if c.paths[i].ID == pathID {
			return &c.paths[i]
		}
	}
	return nil
}

// Chapters returns the path's full roadmap in curriculum order, or nil for
// an unknown path.
func (c *Catalog) Chapters(pathID string) []string {
	p := c.Path(pathID)
	if p == nil {
		return nil
	}
	return p.Levels.All()
}

// Chapter returns the authored content for (pathID, chapter) when it exists,
// and otherwise synthesizes a generic record whose title is the requested
// chapter name. It never returns nil: the caller always has something to
// render.
func (c *Catalog) Chapter(pathID, chapter string) models.ChapterContent {
	if byPath, ok := c.chapters[pathID]; ok {
		if authored, ok := byPath[NormalizeChapter(chapter)]; ok {
			return authored
		}
	}
	return fallbackChapter(chapter)
}

func fallbackChapter(chapter string) models.ChapterContent {
	return models.ChapterContent{
		Title:       chapter,
		Description: fmt.Sprintf("Learn about %s", chapter),
		Content: fmt.Sprintf(`# %[1]s

## Overview
Understanding %[1]s is crucial for your development journey.

## Key Concepts
- Basic principles of %[1]s
- Common patterns and practices
- Best practices and guidelines
- Real-world applications

## Learning Objectives
- Understand the fundamentals of %[1]s
- Apply the concepts in practical scenarios
- Master advanced techniques
- Build real-world projects`, chapter),
		Resources: []models.Resource{
			{
				Title: fmt.Sprintf("%s Fundamentals", chapter),
				URL:   "https://www.freecodecamp.org",
				Type:  "tutorial",
			},
			{
				Title: fmt.Sprintf("Advanced %s", chapter),
				URL:   "https://www.codecademy.com",
				Type:  "course",
			},
		},
		Exercises: []models.Exercise{
			{
				Title:       fmt.Sprintf("%s Practice Exercise 1", chapter),
				Description: "Apply the concepts learned in a practical exercise",
			},
			{
				Title:       fmt.Sprintf("%s Practice Exercise 2", chapter),
				Description: "Build a small project using these concepts",
			},
		},
	}
}

// DailyQuestions picks up to three random questions for the path, optionally
// filtered by difficulty.
func (c *Catalog) DailyQuestions(pathID, difficulty string) []models.Question {
	filtered := []models.Question{}
	for _, q := range c.quests {
		if q.CareerPath != pathID {
			continue
		}
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		filtered = append(filtered, q)
	}

	rand.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})
	if len(filtered) > 3 {
		filtered = filtered[:3]
	}
	return filtered
}

// DailyQuote returns the quote of the day, stable within a calendar day.
func (c *Catalog) DailyQuote(now time.Time) models.Quote {
	return c.quotes[now.YearDay()%len(c.quotes)]
}

// Skills lists every skill known to the role table, deduplicated and sorted,
// for the analyzer's suggestion dropdown.
func (c *Catalog) Skills() []string {
	seen := map[string]bool{}
	skills := []string{}
	for _, role := range c.roles {
		for _, skill := range role.Skills {
			if !seen[skill] {
				seen[skill] = true
				skills = append(skills, skill)
			}
		}
	}
	sort.Strings(skills)
	return skills
}

// MatchRoles returns every role sharing at least one skill with the input.
// Matching is case-insensitive on whole skill names; blank entries are
// ignored. Roles keep table order.
func (c *Catalog) MatchRoles(skills []string) []models.Role {
	wanted := map[string]bool{}
	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill != "" {
			wanted[skill] = true
		}
	}

	matched := []models.Role{}
	for _, role := range c.roles {
		for _, skill := range role.Skills {
			if wanted[strings.ToLower(skill)] {
				matched = append(matched, role)
				break
			}
		}
	}
	return matched
}
