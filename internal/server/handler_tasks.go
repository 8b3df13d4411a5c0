package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/me/taskflow/pkg/model"
)

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	opts, apiErr := parseListOptions(r)
	if apiErr != nil {
		respondError(w, reqID, http.StatusBadRequest, apiErr)
		return
	}

	tasks, total, err := s.store.ListTasks(r.Context(), opts)
	if err != nil {
		respondServiceError(w, reqID, err)
		return
	}
	if tasks == nil {
		tasks = []*model.Task{}
	}

	respondList(w, reqID, tasks, &model.Pagination{
		Total:   total,
		Limit:   opts.Limit,
		Offset:  opts.Offset,
		HasMore: opts.Offset+len(tasks) < total,
	})
}

// parseListOptions reads limit, offset and status from the query string.
func parseListOptions(r *http.Request) (model.ListOptions, *model.APIError) {
	opts := model.DefaultListOptions()
	q := r.URL.Query()

	var details []model.FieldError
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			details = append(details, model.FieldError{Field: "limit", Message: "limit must be an integer"})
		}
		opts.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			details = append(details, model.FieldError{Field: "offset", Message: "offset must be an integer"})
		}
		opts.Offset = n
	}
	if v := q.Get("status"); v != "" {
		st, ok := model.ParseTaskStatus(v)
		if !ok {
			details = append(details, model.FieldError{Field: "status", Message: "status must be TODO, IN_PROGRESS or DONE"})
		}
		opts.Status = st
	}
	if len(details) > 0 {
		return opts, model.NewValidationError("invalid query parameters", details...)
	}
	opts.Clamp()
	return opts, nil
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req model.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalidJSON(w, reqID, err)
		return
	}
	if apiErr := req.Validate(); apiErr != nil {
		respondError(w, reqID, http.StatusBadRequest, apiErr)
		return
	}

	task := model.NewTask(s.newID(), req, s.now().UTC())
	if err := s.store.CreateTask(r.Context(), task); err != nil {
		respondServiceError(w, reqID, err)
		return
	}
	s.logger.Info("task created", "task_id", task.ID, "deadline", task.Deadline, "priority", task.Priority)
	respondCreated(w, reqID, task)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	task, err := s.store.GetTask(r.Context(), id)
	if err != nil {
		respondServiceError(w, reqID, err)
		return
	}
	if task == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("task", id))
		return
	}
	respondOK(w, reqID, task)
}

func (s *Server) handleUpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalidJSON(w, reqID, err)
		return
	}
	status, ok := model.ParseTaskStatus(req.Status)
	if !ok {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("invalid status",
				model.FieldError{Field: "status", Message: "status must be TODO, IN_PROGRESS or DONE"}))
		return
	}

	task, err := s.store.GetTask(r.Context(), id)
	if err != nil {
		respondServiceError(w, reqID, err)
		return
	}
	if task == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("task", id))
		return
	}

	prev := task.Status
	task.Status = status
	task.UpdatedAt = s.now().UTC()
	if err := s.store.UpdateTask(r.Context(), task); err != nil {
		respondServiceError(w, reqID, err)
		return
	}
	s.logger.Info("task status changed", "task_id", id, "from", prev, "to", status)
	respondOK(w, reqID, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := s.store.DeleteTask(r.Context(), id); err != nil {
		respondServiceError(w, reqID, err)
		return
	}
	s.logger.Info("task deleted", "task_id", id)
	respondOK(w, reqID, map[string]string{"deleted": id})
}

func (s *Server) handleTaskSummary(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	sum, err := s.store.CountTasksByStatus(r.Context())
	if err != nil {
		respondServiceError(w, reqID, err)
		return
	}
	respondOK(w, reqID, sum)
}
