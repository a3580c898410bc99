package generate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"produksi-golang/internal/service/schedule"
	"produksi-golang/internal/storage"
)

type PlanGenerator interface {
	Generate(ctx context.Context, cfg storage.PlanConfig) (*schedule.PlanView, error)
}

type Request struct {
	BasePiecesTime       float64 `json:"base_pieces_time" validate:"required,gt=0"`
	InitialStock         int     `json:"initial_stock" validate:"gte=0"`
	DeliveryTarget       int     `json:"delivery_target" validate:"required,gt=0"`
	Month                string  `json:"month" validate:"required"`
	Year                 int     `json:"year" validate:"required,gte=2000"`
	ShiftCapacitySeconds float64 `json:"shift_capacity_seconds" validate:"gte=0"`
}

var validate = validator.New()

func GeneratePlan(log *slog.Logger, gen PlanGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.generate.GeneratePlan"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			log.Warn("Invalid generate request", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid plan configuration", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		view, err := gen.Generate(ctx, storage.PlanConfig{
			BasePiecesTime:       req.BasePiecesTime,
			InitialStock:         req.InitialStock,
			DeliveryTarget:       req.DeliveryTarget,
			Month:                req.Month,
			Year:                 req.Year,
			ShiftCapacitySeconds: req.ShiftCapacitySeconds,
		})
		if err != nil {
			log.Error("Failed to generate plan", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, view)
	}
}
