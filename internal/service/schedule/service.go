package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"produksi-golang/internal/config"
	"produksi-golang/internal/service/capacity"
	"produksi-golang/internal/storage"
)

type PlanStorage interface {
	SaveSnapshot(ctx context.Context, snap storage.Snapshot) error
	GetSnapshot(ctx context.Context, id string) (*storage.Snapshot, error)
	ListSnapshots(ctx context.Context) ([]storage.SnapshotInfo, error)
	GetAllWorkers(ctx context.Context) ([]storage.GetWorkers, error)
}

// PlanService owns the generate/derive/recompile cycle over stored plans.
// Recompiles mutate the whole record sequence, so they are serialized by mu;
// there is never more than one in flight per service.
type PlanService struct {
	storage  PlanStorage
	model    *capacity.Model
	defaults config.PlanDefaults

	mu sync.Mutex
}

func NewPlanService(storage PlanStorage, defaults config.PlanDefaults) *PlanService {
	return &PlanService{
		storage:  storage,
		model:    capacity.New(defaults),
		defaults: defaults,
	}
}

// Generate builds a fresh plan from configuration and returns the derived
// view. An already-sufficient stock is signaled through the view, not an
// error.
func (s *PlanService) Generate(ctx context.Context, cfg storage.PlanConfig) (*PlanView, error) {
	s.fillDefaults(&cfg)
	records := Generate(cfg)
	view := BuildView(cfg, records, s.model, s.offDay())
	return &view, nil
}

// View loads a snapshot, drops dangling roster references and re-derives
// every field. Snapshot and roster are fetched in parallel.
func (s *PlanService) View(ctx context.Context, snapshotID string) (*PlanView, error) {
	const op = "service.schedule.View"

	snap, workers, err := s.load(ctx, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	CleanupRoster(snap.Records, workers)

	view := BuildView(snap.Config, snap.Records, s.model, s.offDay())
	view.SnapshotID = snap.ID
	view.Name = snap.Name
	return &view, nil
}

// UpdateRecord applies one edit command, recompiles disruptions, persists the
// replaced sequence and returns the refreshed view.
func (s *PlanService) UpdateRecord(ctx context.Context, snapshotID, recordID string, upd storage.UpdateRecord) (*PlanView, error) {
	const op = "service.schedule.UpdateRecord"

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, workers, err := s.load(ctx, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	found := false
	for i := range snap.Records {
		if snap.Records[i].ID == recordID {
			ApplyUpdate(&snap.Records[i], upd, s.defaults.MaxManpowerPerShift)
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%s: record %s not found in snapshot %s", op, recordID, snapshotID)
	}

	CleanupRoster(snap.Records, workers)
	snap.Records = Recompile(snap.Records, s.model, snap.Config.BasePiecesTime, s.overtimeDay(snap.Config))

	if err := s.storage.SaveSnapshot(ctx, *snap); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	view := BuildView(snap.Config, snap.Records, s.model, s.offDay())
	view.SnapshotID = snap.ID
	view.Name = snap.Name
	return &view, nil
}

// Recalculate re-runs the disruption recompile without any edit. With no
// disrupted shifts this is a no-op.
func (s *PlanService) Recalculate(ctx context.Context, snapshotID string) (*PlanView, error) {
	const op = "service.schedule.Recalculate"

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, _, err := s.load(ctx, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	snap.Records = Recompile(snap.Records, s.model, snap.Config.BasePiecesTime, s.overtimeDay(snap.Config))

	if err := s.storage.SaveSnapshot(ctx, *snap); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	view := BuildView(snap.Config, snap.Records, s.model, s.offDay())
	view.SnapshotID = snap.ID
	view.Name = snap.Name
	return &view, nil
}

// Save stores a named snapshot and returns its id.
func (s *PlanService) Save(ctx context.Context, name string, cfg storage.PlanConfig, records []storage.ShiftRecord) (string, error) {
	const op = "service.schedule.Save"

	s.fillDefaults(&cfg)

	snap := storage.Snapshot{
		ID:      uuid.NewString(),
		Name:    name,
		Date:    time.Now(),
		Config:  cfg,
		Records: records,
	}

	if err := s.storage.SaveSnapshot(ctx, snap); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return snap.ID, nil
}

func (s *PlanService) List(ctx context.Context) ([]storage.SnapshotInfo, error) {
	const op = "service.schedule.List"

	infos, err := s.storage.ListSnapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return infos, nil
}

// ExportRows produces the flat report projection for one snapshot.
func (s *PlanService) ExportRows(ctx context.Context, snapshotID string) ([]storage.ExportRow, string, error) {
	view, err := s.View(ctx, snapshotID)
	if err != nil {
		return nil, "", err
	}
	return ExportRows(*view), view.Name, nil
}

func (s *PlanService) load(ctx context.Context, snapshotID string) (*storage.Snapshot, []storage.GetWorkers, error) {
	var (
		snap    *storage.Snapshot
		workers []storage.GetWorkers
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap, err = s.storage.GetSnapshot(gCtx, snapshotID)
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		workers, err = s.storage.GetAllWorkers(gCtx)
		if err != nil {
			return fmt.Errorf("workers: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return snap, workers, nil
}

func (s *PlanService) fillDefaults(cfg *storage.PlanConfig) {
	if cfg.ShiftCapacitySeconds <= 0 {
		cfg.ShiftCapacitySeconds = s.defaults.ShiftCapacitySeconds
	}
	if cfg.MonthLength <= 0 {
		cfg.MonthLength = s.defaults.MonthLength
	}
	if cfg.PiecesPerPersonHour <= 0 {
		cfg.PiecesPerPersonHour = s.defaults.PiecesPerPersonHour
	}
}

func (s *PlanService) offDay() time.Weekday {
	return time.Weekday(s.defaults.OffDay)
}

// overtimeDay is the reserved compensation slot, one past the month bound.
func (s *PlanService) overtimeDay(cfg storage.PlanConfig) int {
	bound := cfg.MonthLength
	if bound <= 0 {
		bound = 30
	}
	return bound + 1
}
