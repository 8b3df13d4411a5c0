package server

import (
	"encoding/json"
	"net/http"

	"github.com/me/taskflow/pkg/model"
)

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req model.ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalidJSON(w, reqID, err)
		return
	}
	if req.Strategy == "" {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("missing required field",
				model.FieldError{Field: "strategy", Message: "strategy is required"}))
		return
	}

	resp, err := s.scheduler.Schedule(r.Context(), model.ParseStrategyType(string(req.Strategy)), req.AvailableMinutesPerDay)
	if err != nil {
		respondServiceError(w, reqID, err)
		return
	}
	respondOK(w, reqID, resp)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req model.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalidJSON(w, reqID, err)
		return
	}

	resp, err := s.scheduler.Compare(r.Context(), req.AvailableMinutesPerDay)
	if err != nil {
		respondServiceError(w, reqID, err)
		return
	}
	respondOK(w, reqID, resp)
}
