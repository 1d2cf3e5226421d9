package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"damsync/internal/domain"
)

// Source is the upstream DAM API surface the sync engine consumes.
type Source interface {
	ID() string
	Name() string
	Search(ctx context.Context, site string, page, pageSize int) (*domain.SearchPage, error)
	FetchItem(ctx context.Context, ref domain.ItemRef) (*domain.ItemDetail, error)
	FetchShapeRefs(ctx context.Context, itemID string) ([]domain.ShapeRef, error)
	FetchShape(ctx context.Context, ref domain.ShapeRef) (*domain.ShapeDetail, error)
}

// ItemProcessor handles one raw item end to end for the given run.
type ItemProcessor interface {
	Process(ctx context.Context, ref domain.ItemRef, run *domain.SyncRun) error
}

type AssetStore interface {
	// Upsert inserts or updates the asset keyed by its upstream id,
	// clearing any soft-delete mark. Returns the local row id.
	Upsert(ctx context.Context, asset *domain.Asset) (int64, error)
	LinkSite(ctx context.Context, assetID, siteID int64) error
	// UpdateSizeFromOriginal backfills the asset size from its
	// "original" shape when the size is still zero.
	UpdateSizeFromOriginal(ctx context.Context, assetID int64) error
	// MarkMissingDeleted soft-deletes live assets in the run's site
	// that the run did not touch. Returns the number of rows marked.
	MarkMissingDeleted(ctx context.Context, runID, siteID int64, when time.Time) (int64, error)
}

type ShapeStore interface {
	Upsert(ctx context.Context, shape *domain.Shape) (int64, error)
	MarkMissingDeleted(ctx context.Context, runID, siteID int64, when time.Time) (int64, error)
}

type SiteStore interface {
	// GetOrCreate resolves a site by domain, creating it atomically if
	// absent. Safe under concurrent callers racing on the same domain.
	GetOrCreate(ctx context.Context, siteDomain string) (*domain.Site, error)
}

type SyncRunStore interface {
	Create(ctx context.Context, run *domain.SyncRun) error
	Finish(ctx context.Context, runID int64, endTime time.Time, completed bool) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishAsset(ctx context.Context, asset *domain.Asset, site string) error
	PublishRunCompleted(ctx context.Context, run *domain.SyncRun, stats *domain.SyncStats) error
	Close() error
}
