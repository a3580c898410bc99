package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"produksi-golang/internal/storage"
)

type RosterAdmin interface {
	UpdateWorker(ctx context.Context, req storage.UpdateWorker) error
	DeleteWorker(ctx context.Context, id int64) error
}

func UpdateWorkerAdmin(log *slog.Logger, admin RosterAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workers.update.UpdateWorkerAdmin"

		var req storage.UpdateWorker
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		if req.ID == 0 {
			http.Error(w, "Worker id is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := admin.UpdateWorker(ctx, req); err != nil {
			log.Error("Failed to update worker", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"id":     req.ID,
		})
	}
}

// DeleteWorkerAdmin deactivates a worker and cleans its id out of every
// record assignment. Records referencing it are kept.
func DeleteWorkerAdmin(log *slog.Logger, admin RosterAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workers.update.DeleteWorkerAdmin"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := admin.DeleteWorker(ctx, id); err != nil {
			log.Error("Failed to delete worker", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		log.Info("Worker removed from roster", slog.Int64("id", id))

		render.JSON(w, r, map[string]interface{}{
			"status": "success",
		})
	}
}
