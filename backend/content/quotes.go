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

var quotes = []models.Quote{
	{
		ID:       "q-1",
		Text:     "Talk is cheap. Show me the code.",
		Author:   "Linus Torvalds",
		Category: "programming",
	},
	{
		ID:       "q-2",
		Text:     "Programs must be written for people to read, and only incidentally for machines to execute.",
		Author:   "Harold Abelson",
		Category: "programming",
	},
	{
		ID:       "q-3",
		Text:     "First, solve the problem. Then, write the code.",
		Author:   "John Johnson",
		Category: "problem-solving",
	},
	{
		ID:       "q-4",
		Text:     "The only way to learn a new programming language is by writing programs in it.",
		Author:   "Dennis Ritchie",
		Category: "learning",
	},
	{
		ID:       "q-5",
		Text:     "Simplicity is the soul of efficiency.",
		Author:   "Austin Freeman",
		Category: "design",
	},
	{
		ID:       "q-6",
		Text:     "Experience is the name everyone gives to their mistakes.",
		Author:   "Oscar Wilde",
		Category: "learning",
	},
	{
		ID:       "q-7",
		Text:     "Before software can be reusable it first has to be usable.",
		Author:   "Ralph Johnson",
		Category: "design",
	},
}
