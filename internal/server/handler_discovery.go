package server

import (
	"net/http"

	"github.com/me/taskflow/internal/schedule"
)

type endpointInfo struct {
	Path        string   `json:"path"`
	Methods     []string `json:"methods"`
	Description string   `json:"description"`
}

type discoveryResponse struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Strategies  []string       `json:"strategies"`
	Endpoints   []endpointInfo `json:"endpoints"`
}

func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	strategies := make([]string, 0, len(schedule.Strategies))
	for _, kind := range schedule.Strategies {
		strategies = append(strategies, kind.String())
	}

	respondOK(w, reqID, discoveryResponse{
		Name:        "taskflow API",
		Version:     "v1",
		Description: "taskflow: deadline-aware task tracking and schedule planning",
		Strategies:  strategies,
		Endpoints: []endpointInfo{
			{"/api/v1/tasks", []string{"GET", "POST"}, "Task management. GET accepts ?status=, ?limit=, ?offset="},
			{"/api/v1/tasks/summary", []string{"GET"}, "Task counts per status"},
			{"/api/v1/tasks/{id}", []string{"GET", "DELETE"}, "Single Task operations"},
			{"/api/v1/tasks/{id}/status", []string{"PATCH"}, "Change a Task's status"},
			{"/api/v1/schedule", []string{"POST"}, "Order pending Tasks with one strategy and simulate the day"},
			{"/api/v1/schedule/compare", []string{"POST"}, "Run every strategy over the same Tasks side by side"},
			{"/api/v1/health", []string{"GET"}, "Server health and version"},
		},
	})
}
