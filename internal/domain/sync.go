package domain

import "time"

// SyncRun is the audit record of one execution of the sync engine.
// EndTime stays null while the run is in flight; Completed is set only
// after reconciliation succeeds, so a crashed run is distinguishable by
// a non-null EndTime with Completed still false.
type SyncRun struct {
	ID        int64      `db:"id"`
	UUID      string     `db:"sync_uuid"`
	SiteID    int64      `db:"site_id"`
	StartTime time.Time  `db:"start_time"`
	EndTime   *time.Time `db:"end_time"`
	Completed bool       `db:"completed"`
}

// SyncStats holds statistics about one sync run.
type SyncStats struct {
	RunUUID       string
	Site          string
	Items         int
	AssetsDeleted int64
	ShapesDeleted int64
	Duration      time.Duration
	Completed     bool
}
