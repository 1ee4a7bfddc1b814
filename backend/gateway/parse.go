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

package gateway

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Placeholders substituted when a model reply matches no expected pattern.
// Shape failures are never surfaced as errors; the caller renders these.
const (
	PlaceholderNotFound      = "Not found"
	PlaceholderNoSuggestions = "No suggestions found"
)

var (
	timeComplexityRe  = regexp.MustCompile(`(?i)Time Complexity:\s*(.*)`)
	spaceComplexityRe = regexp.MustCompile(`(?i)Space Complexity:\s*(.*)`)
	improvementsRe    = regexp.MustCompile(`(?i)Improvements:\s*(.*)`)
	plagiarismRe      = regexp.MustCompile(`(?i)plagiarism score:?\s*(\d+)`)
	aiProbabilityRe   = regexp.MustCompile(`(?i)ai.*?probability:?\s*(\d+)`)
	codeFenceRe       = regexp.MustCompile("(?s)```(?:\\w+)?\\n(.*?)```")
	jsonFenceOpenRe   = regexp.MustCompile("(?s)```json\\s*")
	jsonFenceCloseRe  = regexp.MustCompile("(?s)```\\s*$")
)

type CodeAnalysis struct {
	TimeComplexity  string `json:"time_complexity"`
	SpaceComplexity string `json:"space_complexity"`
	Improvements    string `json:"improvements"`
}

// ParseCodeAnalysis extracts "Label: value" fields from a complexity
// analysis reply. Missing labels resolve to placeholders.
func ParseCodeAnalysis(text string) CodeAnalysis {
	return CodeAnalysis{
		TimeComplexity:  matchOr(timeComplexityRe, text, PlaceholderNotFound),
		SpaceComplexity: matchOr(spaceComplexityRe, text, PlaceholderNotFound),
		Improvements:    matchOr(improvementsRe, text, PlaceholderNoSuggestions),
	}
}

func matchOr(re *regexp.Regexp, text, placeholder string) string {
	m := re.FindStringSubmatch(text)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return placeholder
	}
	return strings.TrimSpace(m[1])
}

type PlagiarismReport struct {
	PlagiarismScore int    `json:"plagiarism_score"`
	AIProbability   int    `json:"ai_probability"`
	Analysis        string `json:"analysis"`
}

// ParsePlagiarismReport extracts the two percentage scores. Scores that
// cannot be found are reported as -1 so the UI can show "unknown" instead of
// a misleading zero.
func ParsePlagiarismReport(text string) PlagiarismReport {
	return PlagiarismReport{
		PlagiarismScore: matchInt(plagiarismRe, text),
		AIProbability:   matchInt(aiProbabilityRe, text),
		Analysis:        strings.TrimSpace(text),
	}
}

func matchInt(re *regexp.Regexp, text string) int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return -1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 || n > 100 {
		return -1
	}
	return n
}

// ExtractCode pulls converted code out of a reply: a fenced block when
// present, otherwise the whole reply trimmed. An empty reply resolves to the
// not-found placeholder.
func ExtractCode(text string) string {
	if m := codeFenceRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if trimmed := strings.TrimSpace(text); trimmed != "" {
		return trimmed
	}
	return PlaceholderNotFound
}

// ExtractJSON extracts a JSON object from a reply that may wrap it in prose
// or markdown fences.
func ExtractJSON(text string) (string, error) {
	text = strings.TrimSpace(text)
	text = jsonFenceOpenRe.ReplaceAllString(text, "")
	text = jsonFenceCloseRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no valid JSON object found in response")
	}

	jsonStr := text[start : end+1]
	var js json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &js); err != nil {
		return "", fmt.Errorf("extracted text is not valid JSON: %w", err)
	}
	return jsonStr, nil
}

type DebugResult struct {
	Issue       string `json:"issue"`
	Explanation string `json:"explanation"`
	FixedCode   string `json:"fixedCode"`
}

// ParseDebugResult decodes the debugger's mandated JSON reply. A reply with
// no parseable JSON resolves to placeholder fields, not an error.
func ParseDebugResult(text string) DebugResult {
	jsonStr, err := ExtractJSON(text)
	if err != nil {
		return DebugResult{
			Issue:       PlaceholderNotFound,
			Explanation: PlaceholderNotFound,
			FixedCode:   PlaceholderNotFound,
		}
	}

	var result DebugResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return DebugResult{
			Issue:       PlaceholderNotFound,
			Explanation: PlaceholderNotFound,
			FixedCode:   PlaceholderNotFound,
		}
	}
	if result.Issue == "" {
		result.Issue = PlaceholderNotFound
	}
	if result.Explanation == "" {
		result.Explanation = PlaceholderNotFound
	}
	if result.FixedCode == "" {
		result.FixedCode = PlaceholderNotFound
	}
	return result
}
