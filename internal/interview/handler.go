package interview

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/interview-prep/backend/internal/models"
)

// Handler binds the interview service to HTTP. Routing, schema validation and
// status mapping live here; all interview logic stays in the service.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	writeJSON(w, http.StatusOK, h.service.Analyze(req))
}

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req models.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Settings.TimeLimitSec <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "time_limit_sec must be positive"})
		return
	}
	if req.Settings.MaxQuestions <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "max_questions must be positive"})
		return
	}
	if req.Settings.EarlyTerminateThreshold < 0 || req.Settings.EarlyTerminateThreshold > 100 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "early_terminate_threshold must be between 0 and 100"})
		return
	}

	writeJSON(w, http.StatusOK, h.service.StartSession(req))
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.SessionID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "session_id is required"})
		return
	}
	if req.TimeTakenSec < 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "time_taken_sec must not be negative"})
		return
	}

	resp, err := h.service.SubmitAnswer(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) FetchReport(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "session_id is required"})
		return
	}

	report, err := h.service.FetchReport(sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// writeError maps service errors to client status codes. Both error kinds
// reflect caller misuse and are non-retryable.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Session not found"})
	case errors.Is(err, ErrSessionTerminated):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session already terminated"})
	default:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
