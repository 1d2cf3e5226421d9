package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"damsync/internal/domain"
)

// Options control one sync run.
type Options struct {
	Site     string
	Skip     int
	PageSize int
	Delay    time.Duration
	Workers  int
}

// ProgressFunc is reported the monotonic completion count against the
// total remaining after skip. It may be called from several workers at
// once.
type ProgressFunc func(done, total int)

// SyncService owns the lifecycle of a sync run: it creates the run
// record, drives the page iterator through a bounded worker pool, then
// reconciles soft-deletes and closes the run. Policy is fail-fast: the
// first item error aborts the run and leaves it marked not completed.
type SyncService struct {
	source    Source
	processor ItemProcessor
	sites     SiteStore
	runs      SyncRunStore
	assets    AssetStore
	shapes    ShapeStore
	publisher Publisher
	logger    *slog.Logger
	opts      Options
	progress  ProgressFunc
	now       func() time.Time
}

func NewSyncService(
	source Source,
	processor ItemProcessor,
	sites SiteStore,
	runs SyncRunStore,
	assets AssetStore,
	shapes ShapeStore,
	publisher Publisher,
	logger *slog.Logger,
	opts Options,
) *SyncService {
	if opts.Workers <= 0 {
		opts.Workers = 10
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 100
	}
	return &SyncService{
		source:    source,
		processor: processor,
		sites:     sites,
		runs:      runs,
		assets:    assets,
		shapes:    shapes,
		publisher: publisher,
		logger:    logger.With("source", source.ID()),
		opts:      opts,
		now:       time.Now,
	}
}

// OnProgress registers a progress callback. Must be set before Sync.
func (s *SyncService) OnProgress(fn ProgressFunc) {
	s.progress = fn
}

// Sync executes one full run against the configured site.
func (s *SyncService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	start := s.now()
	s.logger.Info("starting sync",
		"source_name", s.source.Name(),
		"site", s.opts.Site,
		"skip", s.opts.Skip,
		"workers", s.opts.Workers,
	)

	site, err := s.sites.GetOrCreate(ctx, s.opts.Site)
	if err != nil {
		return nil, fmt.Errorf("resolve site %q: %w", s.opts.Site, err)
	}

	run := &domain.SyncRun{
		UUID:      uuid.NewString(),
		SiteID:    site.ID,
		StartTime: start,
	}
	if err := s.runs.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("create sync run: %w", err)
	}

	stats := &domain.SyncStats{RunUUID: run.UUID, Site: s.opts.Site}
	completed := false
	defer func() {
		// The run record gets an end time on every exit path, even a
		// cancelled context; completed stays false unless
		// reconciliation finished.
		cleanupCtx := context.WithoutCancel(ctx)
		if ferr := s.runs.Finish(cleanupCtx, run.ID, s.now(), completed); ferr != nil {
			s.logger.Error("failed to close sync run",
				"run", run.UUID,
				"error", ferr,
			)
		}
		stats.Completed = completed
		stats.Duration = time.Since(start)
	}()

	processed, err := s.stream(ctx, run)
	stats.Items = processed
	if err != nil {
		return stats, err
	}

	if err := s.reconcile(ctx, run, site, stats); err != nil {
		return stats, err
	}
	completed = true

	if s.publisher != nil {
		if err := s.publisher.PublishRunCompleted(ctx, run, stats); err != nil {
			s.logger.Warn("publish run event failed", "run", run.UUID, "error", err)
		}
	}

	s.logger.Info("sync completed",
		"run", run.UUID,
		"items", stats.Items,
		"assets_deleted", stats.AssetsDeleted,
		"shapes_deleted", stats.ShapesDeleted,
		"duration", time.Since(start),
	)

	return stats, nil
}

// stream feeds the iterator into the worker pool and waits for all
// dispatched items. The iterator runs on the calling goroutine only;
// its pagination state is never shared with workers.
func (s *SyncService) stream(ctx context.Context, run *domain.SyncRun) (int, error) {
	it := NewItemIterator(s.source, s.opts.Site, s.opts.Skip, s.opts.PageSize, s.opts.Delay, s.logger)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)

	var done atomic.Int64
	for it.Next(gctx) {
		ref := it.Item()
		total := it.Total()
		g.Go(func() error {
			if err := s.processor.Process(gctx, ref, run); err != nil {
				s.logger.Error("item processing failed",
					"vs_id", ref.ID,
					"error", err,
				)
				return fmt.Errorf("process item %s: %w", ref.ID, err)
			}
			n := done.Add(1)
			if s.progress != nil {
				s.progress(int(n), total)
			}
			return nil
		})
	}

	werr := g.Wait()
	processed := int(done.Load())
	if werr != nil {
		return processed, werr
	}
	if err := it.Err(); err != nil {
		return processed, fmt.Errorf("stream items: %w", err)
	}
	return processed, nil
}

// reconcile soft-deletes every live row in the run's site that the run
// did not touch. Assets first, then shapes. Rows outside the site are
// never considered: a multi-tenant record untouched by this run may
// legitimately belong to someone else's sync.
func (s *SyncService) reconcile(ctx context.Context, run *domain.SyncRun, site *domain.Site, stats *domain.SyncStats) error {
	when := s.now()

	assetsDeleted, err := s.assets.MarkMissingDeleted(ctx, run.ID, site.ID, when)
	if err != nil {
		return fmt.Errorf("reconcile assets: %w", err)
	}
	stats.AssetsDeleted = assetsDeleted

	shapesDeleted, err := s.shapes.MarkMissingDeleted(ctx, run.ID, site.ID, when)
	if err != nil {
		return fmt.Errorf("reconcile shapes: %w", err)
	}
	stats.ShapesDeleted = shapesDeleted

	if assetsDeleted > 0 || shapesDeleted > 0 {
		s.logger.Info("reconciled stale records",
			"run", run.UUID,
			"assets_deleted", assetsDeleted,
			"shapes_deleted", shapesDeleted,
		)
	}
	return nil
}
