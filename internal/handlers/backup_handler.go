package handlers

import (
	"net/http"

	"pg-backend/internal/services"
	"pg-backend/pkg/utils"
)

// BackupHandler lets an admin trigger an off-schedule backup.
type BackupHandler struct {
	Service *services.BackupService
}

func NewBackupHandler(s *services.BackupService) *BackupHandler {
	return &BackupHandler{Service: s}
}

// Run handles POST /api/backup/run
func (h *BackupHandler) Run(w http.ResponseWriter, r *http.Request) {
	if !h.Service.Cfg.Backup.Enabled {
		http.Error(w, "backup is not configured", http.StatusServiceUnavailable)
		return
	}

	if err := h.Service.Run(r.Context()); err != nil {
		http.Error(w, "backup failed", http.StatusInternalServerError)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "completed"})
}
