package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"produksi-golang/internal/service/schedule"
	"produksi-golang/internal/storage"
)

type RecordUpdater interface {
	UpdateRecord(ctx context.Context, snapshotID, recordID string, upd storage.UpdateRecord) (*schedule.PlanView, error)
}

// UpdatePlanRecord applies one edit command and returns the fully re-derived
// plan. The whole sequence is recompiled server-side; the frontend never
// patches derived fields itself.
func UpdatePlanRecord(log *slog.Logger, updater RecordUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.update.UpdatePlanRecord"

		snapshotID := chi.URLParam(r, "id")
		recordID := chi.URLParam(r, "recordId")
		if snapshotID == "" || recordID == "" {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req storage.UpdateRecord
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		log.Info("Updating plan record", slog.String("snapshot", snapshotID), slog.String("record", recordID))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		view, err := updater.UpdateRecord(ctx, snapshotID, recordID, req)
		if err != nil {
			if strings.Contains(err.Error(), "not found") {
				http.Error(w, "Record not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to update record", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, view)
	}
}
