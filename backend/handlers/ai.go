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

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/gateway"
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/metrics"
)

// Fixed user-facing message for any transport failure talking to the model.
// Calls are never retried automatically.
const aiUnavailableMsg = "The AI service is unavailable. Please try again later."

type AIHandler struct {
	client *gateway.Client
}

func NewAIHandler(client *gateway.Client) *AIHandler {
	return &AIHandler{client: client}
}

// generate runs one gateway call with metrics. The request context travels
// with the call, so a client that disconnects aborts the upstream request.
func (h *AIHandler) generate(r *http.Request, tool, prompt string) (string, error) {
	start := time.Now()
	text, err := h.client.Generate(r.Context(), prompt)
	metrics.GatewayDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GatewayRequests.WithLabelValues(tool, "error").Inc()
		return "", err
	}
	metrics.GatewayRequests.WithLabelValues(tool, "ok").Inc()
	return text, nil
}

// Chat answers one free-form assistant question. The exchange is stateless;
// each question stands alone.
func (h *AIHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		http.Error(w, "Message is required", http.StatusBadRequest)
		return
	}

	text, err := h.generate(r, "chat", fmt.Sprintf(gateway.ChatPrompt, req.Message))
	if err != nil {
		http.Error(w, aiUnavailableMsg, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"reply": text})
}

func (h *AIHandler) CheckCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		http.Error(w, "Code is required", http.StatusBadRequest)
		return
	}

	text, err := h.generate(r, "check", fmt.Sprintf(gateway.CodeAnalysisPrompt, req.Code))
	if err != nil {
		http.Error(w, aiUnavailableMsg, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(gateway.ParseCodeAnalysis(text))
}

func (h *AIHandler) DebugCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code    string `json:"code"`
		Problem string `json:"problem"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		http.Error(w, "Code is required", http.StatusBadRequest)
		return
	}

	text, err := h.generate(r, "debug", fmt.Sprintf(gateway.DebugPrompt, req.Code, req.Problem))
	if err != nil {
		http.Error(w, aiUnavailableMsg, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(gateway.ParseDebugResult(text))
}

func (h *AIHandler) ConvertCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code       string `json:"code"`
		SourceLang string `json:"source_lang"`
		TargetLang string `json:"target_lang"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Code == "" || req.SourceLang == "" || req.TargetLang == "" {
		http.Error(w, "Code and both languages are required", http.StatusBadRequest)
		return
	}

	text, err := h.generate(r, "convert",
		fmt.Sprintf(gateway.ConvertPrompt, req.SourceLang, req.TargetLang, req.Code))
	if err != nil {
		http.Error(w, aiUnavailableMsg, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"code": gateway.ExtractCode(text)})
}

func (h *AIHandler) DetectPlagiarism(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		http.Error(w, "Text is required", http.StatusBadRequest)
		return
	}

	text, err := h.generate(r, "plagiarism", fmt.Sprintf(gateway.PlagiarismPrompt, req.Text))
	if err != nil {
		http.Error(w, aiUnavailableMsg, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(gateway.ParsePlagiarismReport(text))
}

func (h *AIHandler) GenerateResume(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Details string `json:"details"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Details == "" {
		http.Error(w, "Candidate details are required", http.StatusBadRequest)
		return
	}

	text, err := h.generate(r, "resume", fmt.Sprintf(gateway.ResumePrompt, req.Details))
	if err != nil {
		http.Error(w, aiUnavailableMsg, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"resume": text})
}

func (h *AIHandler) GenerateCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Details        string `json:"details"`
		JobDescription string `json:"job_description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Details == "" {
		http.Error(w, "Candidate details are required", http.StatusBadRequest)
		return
	}

	text, err := h.generate(r, "cover-letter",
		fmt.Sprintf(gateway.CoverLetterPrompt, req.Details, req.JobDescription))
	if err != nil {
		http.Error(w, aiUnavailableMsg, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"cover_letter": text})
}
