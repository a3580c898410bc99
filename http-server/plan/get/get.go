package get

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"produksi-golang/internal/service/schedule"
)

type PlanViewer interface {
	View(ctx context.Context, snapshotID string) (*schedule.PlanView, error)
}

func GetPlan(log *slog.Logger, viewer PlanViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.get.GetPlan"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		view, err := viewer.View(ctx, id)
		if err != nil {
			if strings.Contains(err.Error(), "not found") {
				log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Snapshot not found")
				http.Error(w, "Plan not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to load plan", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, view)
	}
}
