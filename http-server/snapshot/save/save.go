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

type SnapshotSaver interface {
	Save(ctx context.Context, name string, cfg storage.PlanConfig, records []storage.ShiftRecord) (string, error)
}

type Request struct {
	Name    string                `json:"name"`
	Config  storage.PlanConfig    `json:"config"`
	Records []storage.ShiftRecord `json:"records"`
}

func SaveSnapshot(log *slog.Logger, saver SnapshotSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.snapshot.save.SaveSnapshot"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Name) == "" {
			http.Error(w, "Name is required before saving", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.Save(ctx, strings.TrimSpace(req.Name), req.Config, req.Records)
		if err != nil {
			log.Error("Failed to save snapshot", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		log.Info("Snapshot saved", slog.String("id", id), slog.String("name", req.Name))

		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"id":     id,
		})
	}
}
