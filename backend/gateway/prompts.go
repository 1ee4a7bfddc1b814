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

// Prompt templates for the utility tools. Each mandates a reply format the
// matching parser knows how to read; the model does not always comply, which
// is why every parser has a placeholder path.

const CodeAnalysisPrompt = `Analyze the following code and remember to never give an empty response for Time or Space Complexity and Improvements:
%s

Provide the analysis in the following format:
Time Complexity: <time_complexity>
Space Complexity: <space_complexity>
Improvements: <improvement_suggestions>

Where:
- <time_complexity> is the time complexity of the code.
- <space_complexity> is the space complexity of the code.
- <improvement_suggestions> are suggestions on how the code can be improved.

Example:
Time Complexity: O(n^2)
Space Complexity: O(1)
Improvements: Use a more efficient sorting algorithm.

Now, provide the analysis for the given code.`

const DebugPrompt = `You are an expert programmer. Analyze this code and problem, then respond ONLY with a JSON object in this exact format:
{
  "issue": "<short description of the root cause>",
  "explanation": "<why the bug happens>",
  "fixedCode": "<the corrected code>"
}

Code:
%s

Problem description:
%s`

const ConvertPrompt = `Convert this %s code to %s. Return ONLY the converted code without any explanations, test code, or driver code. The code should be production-ready and follow best practices.

%s`

const PlagiarismPrompt = `Review the following text and estimate how likely it is to be plagiarized or AI-generated. Respond in this format:
Plagiarism Score: <0-100>
AI Probability: <0-100>
Analysis: <short reasoning>
Sources: List any potential sources or matches

Text:
%s`

const ChatPrompt = `You are CodeXprt AI, a friendly guide for people on their tech journey. Answer questions about career paths, required skills, helpful resources, and salary expectations. Please respond using only plain characters, and break down a big response into bullet points. Use simple, clear language.

Question:
%s`

const ResumePrompt = `Write a professional resume for the following candidate. Use clear section headings (Summary, Experience, Education, Skills) and concise bullet points.

Candidate details:
%s`

const CoverLetterPrompt = `Write a tailored, professional cover letter. Keep it under 300 words and address it to the hiring team.

Candidate details:
%s

Job description:
%s`
