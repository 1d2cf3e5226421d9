package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"damsync/internal/domain"
)

type AssetStore struct {
	db *sqlx.DB
}

func NewAssetStore(db *sqlx.DB) *AssetStore {
	return &AssetStore{db: db}
}

// Upsert inserts or updates the asset keyed by vs_id. The single
// statement is the serialization point for concurrent workers landing
// on the same key. Re-observing a soft-deleted asset clears its
// deleted mark; the created timestamp is set once at insert and never
// overwritten.
func (s *AssetStore) Upsert(ctx context.Context, asset *domain.Asset) (int64, error) {
	ex := GetExecutor(ctx, s.db)

	var id int64
	err := sqlx.GetContext(ctx, ex, &id,
		`INSERT INTO assets (vs_id, filename, username, created, size, raw_data, last_sync_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (vs_id) DO UPDATE SET
			filename = EXCLUDED.filename,
			username = EXCLUDED.username,
			raw_data = EXCLUDED.raw_data,
			deleted = NULL,
			last_synced = now(),
			last_sync_id = EXCLUDED.last_sync_id
		 RETURNING id`,
		asset.VSID,
		asset.Filename,
		asset.Username,
		asset.Created,
		asset.Size,
		asset.RawData,
		asset.LastSyncID,
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// LinkSite records site membership. A no-op when already linked.
func (s *AssetStore) LinkSite(ctx context.Context, assetID, siteID int64) error {
	ex := GetExecutor(ctx, s.db)
	_, err := ex.ExecContext(ctx,
		`INSERT INTO asset_sites (asset_id, site_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		assetID, siteID,
	)
	return err
}

// UpdateSizeFromOriginal backfills the asset size from its live
// "original" shape while the size is still unset.
func (s *AssetStore) UpdateSizeFromOriginal(ctx context.Context, assetID int64) error {
	ex := GetExecutor(ctx, s.db)
	_, err := ex.ExecContext(ctx,
		`UPDATE assets a SET size = sh.size
		 FROM shapes sh
		 WHERE a.id = $1
		   AND a.size = 0
		   AND sh.asset_id = a.id
		   AND sh.shapetag = 'original'
		   AND sh.deleted IS NULL
		   AND sh.size > 0`,
		assetID,
	)
	return err
}

// MarkMissingDeleted soft-deletes live assets belonging to the given
// site that the given run did not stamp. Assets outside the site are
// left alone regardless of their last_sync_id.
func (s *AssetStore) MarkMissingDeleted(ctx context.Context, runID, siteID int64, when time.Time) (int64, error) {
	ex := GetExecutor(ctx, s.db)
	res, err := ex.ExecContext(ctx,
		`UPDATE assets a
		 SET deleted = $3, last_synced = now()
		 WHERE a.deleted IS NULL
		   AND a.last_sync_id IS DISTINCT FROM $1
		   AND EXISTS (
			SELECT 1 FROM asset_sites st
			WHERE st.asset_id = a.id AND st.site_id = $2
		   )`,
		runID, siteID, when,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetByVSID returns one asset by its upstream id.
func (s *AssetStore) GetByVSID(ctx context.Context, vsID string) (*domain.Asset, error) {
	ex := GetExecutor(ctx, s.db)
	var asset domain.Asset
	err := sqlx.GetContext(ctx, ex, &asset,
		`SELECT id, vs_id, filename, username, created, size, raw_data,
			deleted, last_synced, last_sync_id
		 FROM assets WHERE vs_id = $1`,
		vsID,
	)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}
