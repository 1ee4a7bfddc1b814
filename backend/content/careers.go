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

var careerPaths = []models.CareerPath{
	{
		ID:          "software-dev",
		Title:       "Software Developer",
		Description: "Build robust and scalable applications",
		Levels: models.ChapterLevel{
			Beginner: []string{
				"Programming Fundamentals",
				"Version Control (Git)",
				"Data Structures",
				"Basic Algorithms",
				"Object-Oriented Programming",
			},
			Intermediate: []string{
				"Design Patterns",
				"Clean Code Principles",
				"Testing Methodologies",
				"Database Design",
				"API Development",
			},
			Advanced: []string{
				"System Architecture",
				"Microservices",
				"Performance Optimization",
				"Security Best Practices",
				"CI/CD Pipelines",
			},
		},
	},
	{
		ID:          "dsa",
		Title:       "DSA Expert",
		Description: "Master algorithms and data structures",
		Levels: models.ChapterLevel{
			Beginner: []string{
				"Arrays and Strings",
				"Linked Lists",
				"Stacks and Queues",
				"Basic Recursion",
				"Time Complexity",
			},
			Intermediate: []string{
				"Trees and Graphs",
				"Dynamic Programming",
				"Sorting Algorithms",
				"Searching Algorithms",
				"Heap and Priority Queue",
			},
			Advanced: []string{
				"Advanced Graph Algorithms",
				"Advanced Dynamic Programming",
				"String Algorithms",
				"NP-Complete Problems",
				"Competitive Programming",
			},
		},
	},
	{
		ID:          "web-dev",
		Title:       "Web Developer",
		Description: "Create modern web applications",
		Levels: models.ChapterLevel{
			Beginner: []string{
				"HTML and CSS",
				"JavaScript Basics",
				"Responsive Design",
				"DOM Manipulation",
				"Web Accessibility",
			},
			Intermediate: []string{
				"Frontend Frameworks",
				"State Management",
				"REST APIs",
				"Authentication Flows",
				"Build Tools",
			},
			Advanced: []string{
				"Server-Side Rendering",
				"Progressive Web Apps",
				"Web Performance",
				"WebSockets and Realtime",
				"Deployment and Hosting",
			},
		},
	},
	{
		ID:          "ai-ml",
		Title:       "AI/ML Engineer",
		Description: "Create intelligent systems and models",
		Levels: models.ChapterLevel{
			Beginner: []string{
				"Python Programming",
				"Linear Algebra",
				"Statistics",
				"Data Preprocessing",
				"Basic ML Algorithms",
			},
			Intermediate: []string{
				"Neural Networks",
				"Deep Learning",
				"Computer Vision",
				"Natural Language Processing",
				"Model Evaluation",
			},
			Advanced: []string{
				"Reinforcement Learning",
				"GANs",
				"Advanced Deep Learning",
				"MLOps",
				"AI Ethics",
			},
		},
	},
	{
		ID:          "cybersecurity",
		Title:       "Cybersecurity Expert",
		Description: "Protect systems and networks from threats",
		Levels: models.ChapterLevel{
			Beginner: []string{
				"Networking Basics",
				"Operating System Security",
				"Cryptography Fundamentals",
				"Security Policies",
				"Common Vulnerabilities",
			},
			Intermediate: []string{
				"Web Security",
				"Penetration Testing",
				"Incident Response",
				"Malware Analysis",
				"Secure Coding",
			},
			Advanced: []string{
				"Red Team Operations",
				"Threat Hunting",
				"Reverse Engineering",
				"Cloud Security",
				"Security Architecture",
			},
		},
	},
}
