package server

import (
	"net/http"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
)

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	StartedAt string `json:"started_at"`
	Uptime    string `json:"uptime"`
	Store     string `json:"store"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	status, storeStatus := "healthy", "ok"
	if _, err := s.store.CountTasksByStatus(r.Context()); err != nil {
		s.logger.Warn("store health check failed", "error", err)
		status, storeStatus = "degraded", "unavailable"
	}

	respondOK(w, reqID, healthResponse{
		Status:    status,
		Version:   "0.1.0",
		GoVersion: runtime.Version(),
		StartedAt: humanize.Time(s.startTime),
		Uptime:    s.now().Sub(s.startTime).Round(time.Second).String(),
		Store:     storeStatus,
	})
}
