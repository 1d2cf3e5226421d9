package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"damsync/internal/domain"
)

type SyncRunStore struct {
	db *sqlx.DB
}

func NewSyncRunStore(db *sqlx.DB) *SyncRunStore {
	return &SyncRunStore{db: db}
}

// Create inserts the run record and fills in its row id. Runs are an
// audit trail and are never deleted.
func (s *SyncRunStore) Create(ctx context.Context, run *domain.SyncRun) error {
	ex := GetExecutor(ctx, s.db)
	return sqlx.GetContext(ctx, ex, &run.ID,
		`INSERT INTO sync_runs (sync_uuid, site_id, start_time)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		run.UUID, run.SiteID, run.StartTime,
	)
}

// Finish stamps the run's end time and completion flag.
func (s *SyncRunStore) Finish(ctx context.Context, runID int64, endTime time.Time, completed bool) error {
	ex := GetExecutor(ctx, s.db)
	_, err := ex.ExecContext(ctx,
		"UPDATE sync_runs SET end_time = $2, completed = $3 WHERE id = $1",
		runID, endTime, completed,
	)
	return err
}

// Get returns one run by row id.
func (s *SyncRunStore) Get(ctx context.Context, runID int64) (*domain.SyncRun, error) {
	ex := GetExecutor(ctx, s.db)
	var run domain.SyncRun
	err := sqlx.GetContext(ctx, ex, &run,
		`SELECT id, sync_uuid, site_id, start_time, end_time, completed
		 FROM sync_runs WHERE id = $1`,
		runID,
	)
	if err != nil {
		return nil, err
	}
	return &run, nil
}
