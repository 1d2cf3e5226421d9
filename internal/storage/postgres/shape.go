package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"damsync/internal/domain"
)

type ShapeStore struct {
	db *sqlx.DB
}

func NewShapeStore(db *sqlx.DB) *ShapeStore {
	return &ShapeStore{db: db}
}

// Upsert inserts or updates the shape keyed by vs_id, clearing any
// soft-delete mark. Version stays at its creation value; re-transcode
// versioning is not modeled.
func (s *ShapeStore) Upsert(ctx context.Context, shape *domain.Shape) (int64, error) {
	ex := GetExecutor(ctx, s.db)

	var id int64
	err := sqlx.GetContext(ctx, ex, &id,
		`INSERT INTO shapes (vs_id, asset_id, shapetag, size, version, timestamp, raw_data, last_sync_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (vs_id) DO UPDATE SET
			asset_id = EXCLUDED.asset_id,
			shapetag = EXCLUDED.shapetag,
			size = EXCLUDED.size,
			raw_data = EXCLUDED.raw_data,
			deleted = NULL,
			last_synced = now(),
			last_sync_id = EXCLUDED.last_sync_id
		 RETURNING id`,
		shape.VSID,
		shape.AssetID,
		shape.ShapeTag,
		shape.Size,
		shape.Version,
		shape.Timestamp,
		shape.RawData,
		shape.LastSyncID,
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// MarkMissingDeleted soft-deletes live shapes whose owning asset
// belongs to the given site and that the given run did not stamp.
func (s *ShapeStore) MarkMissingDeleted(ctx context.Context, runID, siteID int64, when time.Time) (int64, error) {
	ex := GetExecutor(ctx, s.db)
	res, err := ex.ExecContext(ctx,
		`UPDATE shapes sh
		 SET deleted = $3, last_synced = now()
		 WHERE sh.deleted IS NULL
		   AND sh.last_sync_id IS DISTINCT FROM $1
		   AND EXISTS (
			SELECT 1 FROM asset_sites st
			WHERE st.asset_id = sh.asset_id AND st.site_id = $2
		   )`,
		runID, siteID, when,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetByAssetID returns all shapes of one asset.
func (s *ShapeStore) GetByAssetID(ctx context.Context, assetID int64) ([]domain.Shape, error) {
	ex := GetExecutor(ctx, s.db)
	var shapes []domain.Shape
	err := sqlx.SelectContext(ctx, ex, &shapes,
		`SELECT id, vs_id, asset_id, shapetag, size, version, timestamp,
			raw_data, deleted, last_synced, last_sync_id
		 FROM shapes WHERE asset_id = $1 ORDER BY id`,
		assetID,
	)
	return shapes, err
}
