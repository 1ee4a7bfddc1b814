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

var questions = []models.Question{
	// Software Developer path
	{
		ID:          "sd-1",
		Title:       "Two Sum",
		Description: "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.",
		Difficulty:  "easy",
		Category:    "Arrays",
		Points:      10,
		Hints:       []string{"Consider using a hash map", "Think about complement numbers"},
		CareerPath:  "software-dev",
		TestCases: []models.TestCase{
			{
				Input:       "nums = [2,7,11,15], target = 9",
				Output:      "[0,1]",
				Explanation: "Because nums[0] + nums[1] == 9, we return [0, 1]",
			},
		},
	},
	{
		ID:          "sd-2",
		Title:       "Valid Parentheses",
		Description: `Given a string s containing just the characters "(", ")", "{", "}", "[" and "]", determine if the input string is valid.`,
		Difficulty:  "medium",
		Category:    "Stacks",
		Points:      20,
		Hints:       []string{"Use a stack data structure", "Think about matching pairs"},
		CareerPath:  "software-dev",
	},

	// Web Developer path
	{
		ID:          "web-1",
		Title:       "Responsive Layout Challenge",
		Description: "Create a responsive grid layout that adapts to different screen sizes using CSS Grid.",
		Difficulty:  "easy",
		Category:    "CSS",
		Points:      15,
		Hints:       []string{"Use media queries", "Consider mobile-first approach"},
		CareerPath:  "web-dev",
	},
	{
		ID:          "web-2",
		Title:       "API Integration",
		Description: "Implement a weather dashboard using a public weather API with proper error handling.",
		Difficulty:  "medium",
		Category:    "APIs",
		Points:      25,
		Hints:       []string{"Use fetch or axios", "Implement loading states"},
		CareerPath:  "web-dev",
	},

	// AI/ML path
	{
		ID:          "ai-1",
		Title:       "Linear Regression Implementation",
		Description: "Implement linear regression from scratch using numpy.",
		Difficulty:  "medium",
		Category:    "Machine Learning",
		Points:      30,
		Hints:       []string{"Start with the basic equation y = mx + b", "Use gradient descent"},
		CareerPath:  "ai-ml",
	},
	{
		ID:          "ai-2",
		Title:       "Neural Network Basics",
		Description: "Create a simple neural network for binary classification.",
		Difficulty:  "hard",
		Category:    "Deep Learning",
		Points:      40,
		Hints:       []string{"Use sigmoid activation", "Implement backpropagation"},
		CareerPath:  "ai-ml",
	},

	// Cybersecurity path
	{
		ID:          "sec-1",
		Title:       "SQL Injection Prevention",
		Description: "Identify and fix SQL injection vulnerabilities in a given code snippet.",
		Difficulty:  "medium",
		Category:    "Web Security",
		Points:      25,
		Hints:       []string{"Use prepared statements", "Implement input validation"},
		CareerPath:  "cybersecurity",
	},
	{
		ID:          "sec-2",
		Title:       "Password Hashing",
		Description: "Implement secure password hashing with salt.",
		Difficulty:  "hard",
		Category:    "Authentication",
		Points:      35,
		Hints:       []string{"Use bcrypt", "Implement proper salt generation"},
		CareerPath:  "cybersecurity",
	},

	// DSA path
	{
		ID:          "dsa-1",
		Title:       "Reverse a Linked List",
		Description: "Reverse a singly linked list in place and return the new head.",
		Difficulty:  "easy",
		Category:    "Linked Lists",
		Points:      10,
		Hints:       []string{"Track previous, current and next nodes", "Iterate once"},
		CareerPath:  "dsa",
	},
	{
		ID:          "dsa-2",
		Title:       "Longest Increasing Subsequence",
		Description: "Given an integer array, return the length of the longest strictly increasing subsequence.",
		Difficulty:  "hard",
		Category:    "Dynamic Programming",
		Points:      40,
		Hints:       []string{"Define dp[i] as the LIS ending at i", "Binary search gives O(n log n)"},
		CareerPath:  "dsa",
	},
}
