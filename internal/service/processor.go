package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"damsync/internal/domain"
)

// fieldMapping pairs a cached asset column with the upstream metadata
// attribute it is read from and the value used when the attribute is
// absent or empty.
type fieldMapping struct {
	Attr     string
	Fallback string
}

var assetFieldMappings = map[string]fieldMapping{
	"filename": {Attr: "filename", Fallback: "<no filename>"},
	"username": {Attr: "user", Fallback: "<no username>"},
}

const siteMetadataField = "zonza_site"

// originalShapeTag marks the source rendition whose size stands in for
// the asset size.
const originalShapeTag = "original"

// Processor implements ItemProcessor: it turns one search result into
// upserted asset and shape rows stamped with the current run. It is
// idempotent per upstream id and safe to run concurrently for
// different items; cross-worker coordination is delegated to the
// store's per-key atomicity.
type Processor struct {
	source    Source
	assets    AssetStore
	shapes    ShapeStore
	sites     SiteStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewProcessor(
	source Source,
	assets AssetStore,
	shapes ShapeStore,
	sites SiteStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *Processor {
	return &Processor{
		source:    source,
		assets:    assets,
		shapes:    shapes,
		sites:     sites,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("source", source.ID()),
		now:       time.Now,
	}
}

// Process syncs one item: fetches its detail, upserts the asset and its
// site link, then fetches and upserts every shape. Any failure aborts
// this item and propagates; the orchestrator decides what that means
// for the run.
func (p *Processor) Process(ctx context.Context, ref domain.ItemRef, run *domain.SyncRun) error {
	if ref.ID == "" || ref.URL == "" {
		err := &domain.DataShapeError{Reason: "search item missing id or url"}
		p.logger.Error("raw item missing expected fields",
			"id", ref.ID,
			"url", ref.URL,
		)
		return err
	}

	detail, err := p.source.FetchItem(ctx, ref)
	if err != nil {
		return fmt.Errorf("fetch item %s: %w", ref.ID, err)
	}

	asset := &domain.Asset{
		VSID:       ref.ID,
		Filename:   mapField(detail, "filename"),
		Username:   mapField(detail, "username"),
		Created:    p.now(),
		RawData:    detail.Raw,
		LastSyncID: run.ID,
	}
	siteDomain := detail.MetaString(siteMetadataField, "")

	var assetID int64
	err = p.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := p.assets.Upsert(txCtx, asset)
		if err != nil {
			return fmt.Errorf("upsert asset: %w", err)
		}
		assetID = id

		site, err := p.sites.GetOrCreate(txCtx, siteDomain)
		if err != nil {
			return fmt.Errorf("resolve site %q: %w", siteDomain, err)
		}

		if err := p.assets.LinkSite(txCtx, assetID, site.ID); err != nil {
			return fmt.Errorf("link site: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save asset %s: %w", ref.ID, err)
	}
	asset.ID = assetID

	if err := p.syncShapes(ctx, ref.ID, assetID, run); err != nil {
		return err
	}

	if err := p.assets.UpdateSizeFromOriginal(ctx, assetID); err != nil {
		return fmt.Errorf("update asset size %s: %w", ref.ID, err)
	}

	if p.publisher != nil {
		if err := p.publisher.PublishAsset(ctx, asset, siteDomain); err != nil {
			// The cache is already consistent; a flaky event bus must
			// not fail the run.
			p.logger.Warn("publish asset event failed",
				"vs_id", ref.ID,
				"error", err,
			)
		}
	}

	return nil
}

func (p *Processor) syncShapes(ctx context.Context, itemID string, assetID int64, run *domain.SyncRun) error {
	refs, err := p.source.FetchShapeRefs(ctx, itemID)
	if err != nil {
		return fmt.Errorf("fetch shapes for %s: %w", itemID, err)
	}

	for _, sref := range refs {
		detail, err := p.source.FetchShape(ctx, sref)
		if err != nil {
			return fmt.Errorf("fetch shape %s: %w", sref.URL, err)
		}

		shape := &domain.Shape{
			VSID:       detail.ID,
			AssetID:    assetID,
			ShapeTag:   detail.Tag,
			Size:       detail.Size,
			Version:    0,
			RawData:    detail.Raw,
			LastSyncID: run.ID,
		}
		if _, err := p.shapes.Upsert(ctx, shape); err != nil {
			return fmt.Errorf("upsert shape %s: %w", detail.ID, err)
		}
	}

	return nil
}

func mapField(detail *domain.ItemDetail, field string) string {
	m, ok := assetFieldMappings[field]
	if !ok {
		return ""
	}
	return detail.MetaString(m.Attr, m.Fallback)
}
