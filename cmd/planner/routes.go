package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	report_excel "produksi-golang/http-server/generate-report/generate-excel"
	plangen "produksi-golang/http-server/plan/generate"
	planget "produksi-golang/http-server/plan/get"
	planrecalc "produksi-golang/http-server/plan/recalculate"
	planupdate "produksi-golang/http-server/plan/update"
	snapget "produksi-golang/http-server/snapshot/get"
	snapsave "produksi-golang/http-server/snapshot/save"
	getWorkers "produksi-golang/http-server/workers/get"
	saveWorkers "produksi-golang/http-server/workers/save"
	upWorkers "produksi-golang/http-server/workers/update"
	"produksi-golang/internal/config"
	"produksi-golang/internal/middleware/auth"
	generate_excel "produksi-golang/internal/service/generate-excel"
	"produksi-golang/internal/service/schedule"
	"produksi-golang/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, planService *schedule.PlanService, genService *generate_excel.GenerateExcelService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// plan generation and editing
	router.Post("/api/plan/generate", plangen.GeneratePlan(log, planService))
	router.Get("/api/plan/{id}", planget.GetPlan(log, planService))
	router.Put("/api/plan/{id}/record/{recordId}", planupdate.UpdatePlanRecord(log, planService))
	router.Post("/api/plan/{id}/recalculate", planrecalc.RecalculatePlan(log, planService))

	// named snapshots
	router.Post("/api/plan/save", snapsave.SaveSnapshot(log, planService))
	router.Get("/api/plans", snapget.GetSnapshots(log, planService))

	// roster
	router.Get("/api/workers/all", getWorkers.GetWorkers(log, storage))
	router.Post("/api/workers", saveWorkers.SaveWorker(log, storage))
	router.Post("/api/workers/assignments", saveWorkers.SaveAssignments(log, storage))

	// excel report
	router.Get("/api/report/excel", report_excel.GenerateReportExcel(log, genService))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Post("/workers/new", saveWorkers.SaveWorker(log, storage))
	adminRouter.Put("/workers/update", upWorkers.UpdateWorkerAdmin(log, storage))
	adminRouter.Delete("/workers/{id}", upWorkers.DeleteWorkerAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	// SPA fallback for the Vue frontend when the bundle is present
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); err == nil {
		fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))
		router.Handle("/assets/*", fileServer)
		router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
			path := filepath.Join(frontendDir, r.URL.Path)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				http.ServeFile(w, r, path)
				return
			}
			http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
		})
	}

	return router
}
