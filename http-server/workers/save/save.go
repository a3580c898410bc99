package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"produksi-golang/internal/storage"
)

type RosterWriter interface {
	SaveWorker(ctx context.Context, req storage.SaveWorker) (int64, error)
	SaveRecordAssignments(ctx context.Context, req storage.SaveAssignments) error
}

func SaveWorker(log *slog.Logger, writer RosterWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workers.save.SaveWorker"

		var req storage.SaveWorker
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Name) == "" {
			http.Error(w, "Worker name is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := writer.SaveWorker(ctx, req)
		if err != nil {
			log.Error("Failed to save worker", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"id":     id,
		})
	}
}

// SaveAssignments commits one record's manpower selection. The checkbox draft
// stays in the frontend; only the committed set arrives here.
func SaveAssignments(log *slog.Logger, writer RosterWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workers.save.SaveAssignments"

		var req storage.SaveAssignments
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.SnapshotID == "" || req.RecordID == "" {
			http.Error(w, "snapshot_id and record_id are required", http.StatusBadRequest)
			return
		}
		if len(req.EmployeeIDs) > 6 {
			http.Error(w, "At most 6 workers per shift", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := writer.SaveRecordAssignments(ctx, req); err != nil {
			log.Error("Failed to save assignments", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		log.Info("Assignments saved", slog.String("record", req.RecordID), slog.Int("workers", len(req.EmployeeIDs)))

		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"saved":  len(req.EmployeeIDs),
		})
	}
}
