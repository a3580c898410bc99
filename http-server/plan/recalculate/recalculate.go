package recalculate

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

type Recalculator interface {
	Recalculate(ctx context.Context, snapshotID string) (*schedule.PlanView, error)
}

// RecalculatePlan re-runs the disruption recompile over the stored sequence.
// Without disrupted shifts it returns the plan unchanged.
func RecalculatePlan(log *slog.Logger, calc Recalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.recalculate.RecalculatePlan"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		view, err := calc.Recalculate(ctx, id)
		if err != nil {
			if strings.Contains(err.Error(), "not found") {
				http.Error(w, "Plan not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to recalculate plan", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, view)
	}
}
