package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"produksi-golang/internal/storage"
)

type SnapshotLister interface {
	List(ctx context.Context) ([]storage.SnapshotInfo, error)
}

func GetSnapshots(log *slog.Logger, lister SnapshotLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.snapshot.get.GetSnapshots"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		infos, err := lister.List(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to list snapshots")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, infos)
	}
}
