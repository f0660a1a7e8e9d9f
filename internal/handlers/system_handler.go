package handlers

import (
	"net/http"
	"time"

	"github.com/homenest/HomeNest_Backend/internal/config"
	"github.com/homenest/HomeNest_Backend/internal/constants"
	"github.com/homenest/HomeNest_Backend/internal/database"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// SystemHandler serves the operational endpoints.
type SystemHandler struct {
	db        *database.Pool
	cfg       *config.AppConfig
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(db *database.Pool, cfg *config.AppConfig) *SystemHandler {
	return &SystemHandler{
		db:        db,
		cfg:       cfg,
		startTime: time.Now(),
	}
}

// Health handles GET /health: a DB ping plus a trivial query. Responds 503
// when the store is unreachable.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.HealthCheck(r.Context()); err != nil {
		utils.Error(w, http.StatusServiceUnavailable, constants.MsgServiceUnavailable, nil)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Version handles GET /version.
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"name":        h.cfg.App.Name,
		"version":     h.cfg.App.Version,
		"environment": h.cfg.App.Environment,
		"uptime":      time.Since(h.startTime).Truncate(time.Second).String(),
	})
}
