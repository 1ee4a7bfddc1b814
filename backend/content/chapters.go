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
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/models"
)

// Authored chapter bodies, keyed by career path id and normalized chapter
// slug. Chapters without an authored entry get a synthesized fallback from
// the resolver.
var chapterContent = map[string]map[string]models.ChapterContent{
	"software-dev": {
		"programming-fundamentals": {
			Title:       "Programming Fundamentals",
			Description: "Master the basics of programming",
			Content: `**What are Programming Fundamentals?**

Programming fundamentals refer to the essential concepts and principles that form the foundation of writing and understanding computer programs.

**Core Concepts**

1. Variables and Data Types: integers, floats, strings, booleans.
2. Operators and Expressions: arithmetic, relational, logical, assignment.
3. Control Structures: conditionals and loops define the flow of execution.
4. Functions and Modularity: break code into smaller, reusable blocks.
5. Data Structures: arrays, dictionaries, stacks and queues.
6. Object-Oriented Programming: encapsulation, inheritance, polymorphism, abstraction.
7. Algorithms and Problem Solving: sorting, searching, optimization.
8. Exception Handling: manage errors and unexpected inputs gracefully.
9. File Handling: read from and write to external files.
10. Debugging and Best Practices: clean code, meaningful names, regular testing.

Mastering these concepts is essential for building efficient, scalable and maintainable software.`,
			Resources: []models.Resource{
				{
					Title: "Khan Academy - Computer Programming",
					URL:   "https://www.khanacademy.org/computing/computer-programming",
					Type:  "tutorial",
				},
				{
					Title: "MDN Web Docs - JavaScript Fundamentals",
					URL:   "https://developer.mozilla.org/en-US/curriculum/core/javascript-fundamentals/",
					Type:  "tutorial",
				},
			},
			Exercises: []models.Exercise{
				{
					Title:       "FizzBuzz",
					Description: "Print numbers 1 to 100, replacing multiples of 3 with Fizz, multiples of 5 with Buzz, and both with FizzBuzz.",
				},
				{
					Title:       "Temperature Converter",
					Description: "Write a function converting between Celsius and Fahrenheit with input validation.",
				},
			},
		},
		"version-control-git": {
			Title:       "Version Control (Git)",
			Description: "Track and manage changes to your code",
			Content: `**Why Version Control?**

Version control records changes to files over time so that specific versions can be recalled later. Git is the de facto standard.

**Essentials**

- Repositories, commits and the staging area.
- Branching and merging; resolving conflicts.
- Remotes: clone, fetch, pull, push.
- Collaborative workflows: feature branches and pull requests.
- History tools: log, diff, blame, bisect.`,
			Resources: []models.Resource{
				{
					Title: "Pro Git Book",
					URL:   "https://git-scm.com/book/en/v2",
					Type:  "article",
				},
				{
					Title: "Learn Git Branching",
					URL:   "https://learngitbranching.js.org",
					Type:  "tutorial",
				},
			},
			Exercises: []models.Exercise{
				{
					Title:       "Branch and Merge",
					Description: "Create a feature branch, commit two changes, and merge it back resolving a conflict.",
				},
			},
		},
	},
	"dsa": {
		"arrays-and-strings": {
			Title:       "Arrays and Strings",
			Description: "The building blocks of data manipulation",
			Content: `**Arrays and Strings**

Arrays store elements contiguously and allow constant-time access by index. Strings are arrays of characters with their own library support.

**Key Techniques**

- Two-pointer traversal for pair and window problems.
- Prefix sums for range queries.
- Sliding windows for substring problems.
- In-place reversal and rotation.

Understand when an operation is O(1), O(n) or O(n^2); most interview
questions about arrays are about avoiding the quadratic solution.`,
			Resources: []models.Resource{
				{
					Title: "Arrays 101",
					URL:   "https://leetcode.com/explore/learn/card/fun-with-arrays/",
					Type:  "tutorial",
				},
			},
			Exercises: []models.Exercise{
				{
					Title:       "Rotate Array",
					Description: "Rotate an array to the right by k steps in place.",
				},
				{
					Title:       "Longest Substring Without Repeating Characters",
					Description: "Find the length of the longest substring without repeating characters using a sliding window.",
				},
			},
		},
	},
}
