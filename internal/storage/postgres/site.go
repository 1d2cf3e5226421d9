package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"damsync/internal/domain"
)

type SiteStore struct {
	db *sqlx.DB
}

func NewSiteStore(db *sqlx.DB) *SiteStore {
	return &SiteStore{db: db}
}

// GetOrCreate resolves a site by domain, inserting it when absent.
// Concurrent workers race to create the same new site; the insert uses
// ON CONFLICT DO NOTHING and falls back to re-reading the winner's row,
// so the loser of the race recovers instead of failing.
func (s *SiteStore) GetOrCreate(ctx context.Context, siteDomain string) (*domain.Site, error) {
	ex := GetExecutor(ctx, s.db)

	var site domain.Site
	err := sqlx.GetContext(ctx, ex, &site,
		`INSERT INTO sites (domain) VALUES ($1)
		 ON CONFLICT (domain) DO NOTHING
		 RETURNING id, domain, created_at`,
		siteDomain,
	)
	if errors.Is(err, sql.ErrNoRows) {
		err = sqlx.GetContext(ctx, ex, &site,
			"SELECT id, domain, created_at FROM sites WHERE domain = $1",
			siteDomain,
		)
	}
	if err != nil {
		return nil, err
	}
	return &site, nil
}
