package domain

import (
	"encoding/json"
	"time"
)

// Site is a tenant boundary. Sites are created lazily on first
// observation and never deleted by the sync engine.
type Site struct {
	ID        int64     `db:"id"`
	Domain    string    `db:"domain"`
	CreatedAt time.Time `db:"created_at"`
}

// Asset is the local cache record of one upstream media item.
// VSID is the upstream identifier and is globally unique.
type Asset struct {
	ID         int64           `db:"id"`
	VSID       string          `db:"vs_id"`
	Filename   string          `db:"filename"`
	Username   string          `db:"username"`
	Created    time.Time       `db:"created"`
	Size       int64           `db:"size"`
	RawData    json.RawMessage `db:"raw_data"`
	Deleted    *time.Time      `db:"deleted"`
	LastSynced time.Time       `db:"last_synced"`
	LastSyncID int64           `db:"last_sync_id"`
}

// Shape is the local cache record of one rendition of an Asset.
type Shape struct {
	ID         int64           `db:"id"`
	VSID       string          `db:"vs_id"`
	AssetID    int64           `db:"asset_id"`
	ShapeTag   string          `db:"shapetag"`
	Size       int64           `db:"size"`
	Version    int             `db:"version"`
	Timestamp  *time.Time      `db:"timestamp"`
	RawData    json.RawMessage `db:"raw_data"`
	Deleted    *time.Time      `db:"deleted"`
	LastSynced time.Time       `db:"last_synced"`
	LastSyncID int64           `db:"last_sync_id"`
}
