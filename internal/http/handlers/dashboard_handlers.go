package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/acrispim/shopdash/internal/dashboard"
)

// GetDashboardHandler godoc
// @Summary Latest dashboard metrics snapshot
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dashboard.Snapshot
// @Failure 403 {string} string "Forbidden"
// @Failure 503 {string} string "Metrics not ready"
// @Router /metrics/dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	snap, ok := refresher.Latest()
	if !ok && snapshotCache != nil {
		cached, found, err := snapshotCache.Latest(r.Context())
		if err != nil {
			log.Printf("failed to read snapshot cache: %v", err)
		}
		if found {
			snap, ok = cached, true
		}
	}
	if !ok {
		http.Error(w, "dashboard metrics not ready", http.StatusServiceUnavailable)
		return
	}

	if err := writeJSON(w, http.StatusOK, snap); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// RefreshDashboardHandler godoc
// @Summary Recompute dashboard metrics now
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dashboard.Snapshot
// @Failure 403 {string} string "Forbidden"
// @Failure 409 {string} string "Refresh already in progress"
// @Failure 502 {string} string "Upstream fetch failed"
// @Router /metrics/dashboard/refresh [post]
func RefreshDashboardHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	if err := refresher.Refresh(r.Context()); err != nil {
		if errors.Is(err, dashboard.ErrRefreshInFlight) {
			http.Error(w, "refresh already in progress", http.StatusConflict)
			return
		}
		http.Error(w, "could not refresh dashboard data", http.StatusBadGateway)
		return
	}

	snap, ok := refresher.Latest()
	if !ok {
		http.Error(w, "dashboard metrics not ready", http.StatusServiceUnavailable)
		return
	}
	if err := writeJSON(w, http.StatusOK, snap); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}
