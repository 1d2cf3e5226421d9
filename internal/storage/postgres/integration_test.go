//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"damsync/internal/domain"
	"damsync/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_sync_tables.up.sql"),
			filepath.Join(migrationsPath, "002_add_sync_indexes.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM shapes")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM asset_sites")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM assets")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sync_runs")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sites")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

// createRun inserts a site and an open run against it, returning both.
func (s *PostgresIntegrationSuite) createRun(siteDomain string) (*domain.Site, *domain.SyncRun) {
	site, err := NewSiteStore(s.db).GetOrCreate(s.ctx, siteDomain)
	s.Require().NoError(err)

	run := &domain.SyncRun{
		UUID:      uuid.NewString(),
		SiteID:    site.ID,
		StartTime: time.Now().Truncate(time.Microsecond),
	}
	s.Require().NoError(NewSyncRunStore(s.db).Create(s.ctx, run))
	s.Require().Greater(run.ID, int64(0))

	return site, run
}

func (s *PostgresIntegrationSuite) insertAsset(vsID string, runID int64) int64 {
	store := NewAssetStore(s.db)
	id, err := store.Upsert(s.ctx, &domain.Asset{
		VSID:       vsID,
		Filename:   vsID + ".mov",
		Username:   "tester",
		Created:    time.Now().Truncate(time.Microsecond),
		RawData:    []byte(`{}`),
		LastSyncID: runID,
	})
	s.Require().NoError(err)
	return id
}

func (s *PostgresIntegrationSuite) TestAssetStore_Upsert_Insert() {
	_, run := s.createRun("trials.zonza.tv")
	store := NewAssetStore(s.db)

	id := s.insertAsset("VX-1", run.ID)
	s.Greater(id, int64(0))

	asset, err := store.GetByVSID(s.ctx, "VX-1")
	s.NoError(err)
	s.Equal("VX-1.mov", asset.Filename)
	s.Equal("tester", asset.Username)
	s.Equal(run.ID, asset.LastSyncID)
	s.Nil(asset.Deleted)
}

func (s *PostgresIntegrationSuite) TestAssetStore_Upsert_ReobserveClearsDeleted() {
	site, run1 := s.createRun("trials.zonza.tv")
	store := NewAssetStore(s.db)

	id1 := s.insertAsset("VX-1", run1.ID)
	created1, err := store.GetByVSID(s.ctx, "VX-1")
	s.Require().NoError(err)

	// Soft-delete the row out of band, then re-observe in a later run.
	_, err = s.db.ExecContext(s.ctx, "UPDATE assets SET deleted = now() WHERE id = $1", id1)
	s.Require().NoError(err)

	run2 := &domain.SyncRun{UUID: uuid.NewString(), SiteID: site.ID, StartTime: time.Now()}
	s.Require().NoError(NewSyncRunStore(s.db).Create(s.ctx, run2))

	id2, err := store.Upsert(s.ctx, &domain.Asset{
		VSID:       "VX-1",
		Filename:   "renamed.mov",
		Username:   "tester",
		Created:    time.Now().Add(time.Hour),
		RawData:    []byte(`{"v":2}`),
		LastSyncID: run2.ID,
	})
	s.NoError(err)
	s.Equal(id1, id2)

	asset, err := store.GetByVSID(s.ctx, "VX-1")
	s.NoError(err)
	s.Nil(asset.Deleted)
	s.Equal("renamed.mov", asset.Filename)
	s.Equal(run2.ID, asset.LastSyncID)
	// The original creation timestamp survives updates.
	s.WithinDuration(created1.Created, asset.Created, time.Millisecond)
}

func (s *PostgresIntegrationSuite) TestAssetStore_Upsert_DoesNotClobberSize() {
	_, run := s.createRun("trials.zonza.tv")
	store := NewAssetStore(s.db)

	id := s.insertAsset("VX-1", run.ID)
	_, err := s.db.ExecContext(s.ctx, "UPDATE assets SET size = 42 WHERE id = $1", id)
	s.Require().NoError(err)

	_, err = store.Upsert(s.ctx, &domain.Asset{
		VSID:       "VX-1",
		Filename:   "VX-1.mov",
		Username:   "tester",
		Created:    time.Now(),
		RawData:    []byte(`{}`),
		LastSyncID: run.ID,
	})
	s.NoError(err)

	asset, err := store.GetByVSID(s.ctx, "VX-1")
	s.NoError(err)
	s.Equal(int64(42), asset.Size)
}

func (s *PostgresIntegrationSuite) TestAssetStore_LinkSite_Idempotent() {
	site, run := s.createRun("trials.zonza.tv")
	store := NewAssetStore(s.db)

	id := s.insertAsset("VX-1", run.ID)

	s.NoError(store.LinkSite(s.ctx, id, site.ID))
	s.NoError(store.LinkSite(s.ctx, id, site.ID))

	var count int
	err := s.db.GetContext(s.ctx, &count,
		"SELECT COUNT(*) FROM asset_sites WHERE asset_id = $1", id)
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestAssetStore_UpdateSizeFromOriginal() {
	_, run := s.createRun("trials.zonza.tv")
	assets := NewAssetStore(s.db)
	shapes := NewShapeStore(s.db)

	id := s.insertAsset("VX-1", run.ID)

	_, err := shapes.Upsert(s.ctx, &domain.Shape{
		VSID:       "VX-100",
		AssetID:    id,
		ShapeTag:   "lowres",
		Size:       1000,
		RawData:    []byte(`{}`),
		LastSyncID: run.ID,
	})
	s.Require().NoError(err)
	_, err = shapes.Upsert(s.ctx, &domain.Shape{
		VSID:       "VX-101",
		AssetID:    id,
		ShapeTag:   "original",
		Size:       734003200,
		RawData:    []byte(`{}`),
		LastSyncID: run.ID,
	})
	s.Require().NoError(err)

	s.NoError(assets.UpdateSizeFromOriginal(s.ctx, id))

	asset, err := assets.GetByVSID(s.ctx, "VX-1")
	s.NoError(err)
	s.Equal(int64(734003200), asset.Size)
}

func (s *PostgresIntegrationSuite) TestAssetStore_UpdateSizeFromOriginal_SkipsBackfilled() {
	_, run := s.createRun("trials.zonza.tv")
	assets := NewAssetStore(s.db)
	shapes := NewShapeStore(s.db)

	id := s.insertAsset("VX-1", run.ID)
	_, err := s.db.ExecContext(s.ctx, "UPDATE assets SET size = 42 WHERE id = $1", id)
	s.Require().NoError(err)

	_, err = shapes.Upsert(s.ctx, &domain.Shape{
		VSID:       "VX-101",
		AssetID:    id,
		ShapeTag:   "original",
		Size:       734003200,
		RawData:    []byte(`{}`),
		LastSyncID: run.ID,
	})
	s.Require().NoError(err)

	s.NoError(assets.UpdateSizeFromOriginal(s.ctx, id))

	asset, err := assets.GetByVSID(s.ctx, "VX-1")
	s.NoError(err)
	s.Equal(int64(42), asset.Size)
}

func (s *PostgresIntegrationSuite) TestAssetStore_MarkMissingDeleted() {
	site, run1 := s.createRun("trials.zonza.tv")
	assets := NewAssetStore(s.db)

	// Three assets observed by run1.
	idX := s.insertAsset("VX-X", run1.ID)
	idY := s.insertAsset("VX-Y", run1.ID)
	idZ := s.insertAsset("VX-Z", run1.ID)
	for _, id := range []int64{idX, idY, idZ} {
		s.Require().NoError(assets.LinkSite(s.ctx, id, site.ID))
	}

	// run2 re-observes only X and Y.
	run2 := &domain.SyncRun{UUID: uuid.NewString(), SiteID: site.ID, StartTime: time.Now()}
	s.Require().NoError(NewSyncRunStore(s.db).Create(s.ctx, run2))
	s.insertAsset("VX-X", run2.ID)
	s.insertAsset("VX-Y", run2.ID)

	deleted, err := assets.MarkMissingDeleted(s.ctx, run2.ID, site.ID, time.Now())
	s.NoError(err)
	s.Equal(int64(1), deleted)

	z, err := assets.GetByVSID(s.ctx, "VX-Z")
	s.NoError(err)
	s.NotNil(z.Deleted)

	x, err := assets.GetByVSID(s.ctx, "VX-X")
	s.NoError(err)
	s.Nil(x.Deleted)
}

func (s *PostgresIntegrationSuite) TestAssetStore_MarkMissingDeleted_ScopedToSite() {
	siteA, runA := s.createRun("site-a.zonza.tv")
	siteB, err := NewSiteStore(s.db).GetOrCreate(s.ctx, "site-b.zonza.tv")
	s.Require().NoError(err)
	assets := NewAssetStore(s.db)

	// An asset belonging only to site B, stamped by an older run.
	idB := s.insertAsset("VX-B", runA.ID)
	s.Require().NoError(assets.LinkSite(s.ctx, idB, siteB.ID))

	// A fresh run over site A observes nothing; site B's asset must
	// survive even though its last_sync_id differs.
	runA2 := &domain.SyncRun{UUID: uuid.NewString(), SiteID: siteA.ID, StartTime: time.Now()}
	s.Require().NoError(NewSyncRunStore(s.db).Create(s.ctx, runA2))

	deleted, err := assets.MarkMissingDeleted(s.ctx, runA2.ID, siteA.ID, time.Now())
	s.NoError(err)
	s.Equal(int64(0), deleted)

	b, err := assets.GetByVSID(s.ctx, "VX-B")
	s.NoError(err)
	s.Nil(b.Deleted)
}

func (s *PostgresIntegrationSuite) TestAssetStore_MarkMissingDeleted_PreservesPriorTimestamp() {
	site, run1 := s.createRun("trials.zonza.tv")
	assets := NewAssetStore(s.db)

	id := s.insertAsset("VX-OLD", run1.ID)
	s.Require().NoError(assets.LinkSite(s.ctx, id, site.ID))

	firstDeletion := time.Now().Add(-24 * time.Hour).Truncate(time.Microsecond)
	_, err := s.db.ExecContext(s.ctx,
		"UPDATE assets SET deleted = $2 WHERE id = $1", id, firstDeletion)
	s.Require().NoError(err)

	run2 := &domain.SyncRun{UUID: uuid.NewString(), SiteID: site.ID, StartTime: time.Now()}
	s.Require().NoError(NewSyncRunStore(s.db).Create(s.ctx, run2))

	deleted, err := assets.MarkMissingDeleted(s.ctx, run2.ID, site.ID, time.Now())
	s.NoError(err)
	s.Equal(int64(0), deleted)

	asset, err := assets.GetByVSID(s.ctx, "VX-OLD")
	s.NoError(err)
	s.Require().NotNil(asset.Deleted)
	s.WithinDuration(firstDeletion, *asset.Deleted, time.Millisecond)
}

func (s *PostgresIntegrationSuite) TestShapeStore_Upsert_PreservesVersionAndTimestamp() {
	_, run := s.createRun("trials.zonza.tv")
	shapes := NewShapeStore(s.db)

	assetID := s.insertAsset("VX-1", run.ID)

	stamped := time.Now().Truncate(time.Microsecond)
	_, err := shapes.Upsert(s.ctx, &domain.Shape{
		VSID:       "VX-100",
		AssetID:    assetID,
		ShapeTag:   "original",
		Size:       100,
		Version:    3,
		Timestamp:  utils.Ptr(stamped),
		RawData:    []byte(`{}`),
		LastSyncID: run.ID,
	})
	s.Require().NoError(err)

	_, err = s.db.ExecContext(s.ctx,
		"UPDATE shapes SET deleted = now() WHERE vs_id = $1", "VX-100")
	s.Require().NoError(err)

	// A later observation carries fresh size and payload but must not
	// roll version or timestamp, and must clear the soft-delete mark.
	_, err = shapes.Upsert(s.ctx, &domain.Shape{
		VSID:       "VX-100",
		AssetID:    assetID,
		ShapeTag:   "original",
		Size:       200,
		RawData:    []byte(`{"v":2}`),
		LastSyncID: run.ID,
	})
	s.NoError(err)

	rows, err := shapes.GetByAssetID(s.ctx, assetID)
	s.NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(int64(200), rows[0].Size)
	s.Equal(3, rows[0].Version)
	s.Require().NotNil(rows[0].Timestamp)
	s.WithinDuration(stamped, *rows[0].Timestamp, time.Millisecond)
	s.Nil(rows[0].Deleted)
}

func (s *PostgresIntegrationSuite) TestShapeStore_MarkMissingDeleted_ViaAssetMembership() {
	site, run1 := s.createRun("trials.zonza.tv")
	assets := NewAssetStore(s.db)
	shapes := NewShapeStore(s.db)

	assetID := s.insertAsset("VX-1", run1.ID)
	s.Require().NoError(assets.LinkSite(s.ctx, assetID, site.ID))

	_, err := shapes.Upsert(s.ctx, &domain.Shape{
		VSID: "VX-100", AssetID: assetID, ShapeTag: "original",
		RawData: []byte(`{}`), LastSyncID: run1.ID,
	})
	s.Require().NoError(err)
	_, err = shapes.Upsert(s.ctx, &domain.Shape{
		VSID: "VX-101", AssetID: assetID, ShapeTag: "lowres",
		RawData: []byte(`{}`), LastSyncID: run1.ID,
	})
	s.Require().NoError(err)

	// run2 re-observes the original shape only.
	run2 := &domain.SyncRun{UUID: uuid.NewString(), SiteID: site.ID, StartTime: time.Now()}
	s.Require().NoError(NewSyncRunStore(s.db).Create(s.ctx, run2))
	_, err = shapes.Upsert(s.ctx, &domain.Shape{
		VSID: "VX-100", AssetID: assetID, ShapeTag: "original",
		RawData: []byte(`{}`), LastSyncID: run2.ID,
	})
	s.Require().NoError(err)

	deleted, err := shapes.MarkMissingDeleted(s.ctx, run2.ID, site.ID, time.Now())
	s.NoError(err)
	s.Equal(int64(1), deleted)

	rows, err := shapes.GetByAssetID(s.ctx, assetID)
	s.NoError(err)
	s.Require().Len(rows, 2)
	s.Nil(rows[0].Deleted)
	s.NotNil(rows[1].Deleted)
}

func (s *PostgresIntegrationSuite) TestSiteStore_GetOrCreate_Idempotent() {
	store := NewSiteStore(s.db)

	first, err := store.GetOrCreate(s.ctx, "trials.zonza.tv")
	s.NoError(err)
	second, err := store.GetOrCreate(s.ctx, "trials.zonza.tv")
	s.NoError(err)
	s.Equal(first.ID, second.ID)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM sites")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestSiteStore_GetOrCreate_Concurrent() {
	store := NewSiteStore(s.db)

	const racers = 8
	ids := make([]int64, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			site, err := store.GetOrCreate(s.ctx, "raced.zonza.tv")
			s.NoError(err)
			if site != nil {
				ids[i] = site.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		s.Equal(ids[0], id)
	}

	var count int
	err := s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM sites WHERE domain = $1", "raced.zonza.tv")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestSyncRunStore_CreateAndFinish() {
	site, err := NewSiteStore(s.db).GetOrCreate(s.ctx, "trials.zonza.tv")
	s.Require().NoError(err)
	store := NewSyncRunStore(s.db)

	run := &domain.SyncRun{
		UUID:      uuid.NewString(),
		SiteID:    site.ID,
		StartTime: time.Now().Truncate(time.Microsecond),
	}
	s.NoError(store.Create(s.ctx, run))
	s.Greater(run.ID, int64(0))

	open, err := store.Get(s.ctx, run.ID)
	s.NoError(err)
	s.Nil(open.EndTime)
	s.False(open.Completed)

	end := time.Now().Truncate(time.Microsecond)
	s.NoError(store.Finish(s.ctx, run.ID, end, true))

	closed, err := store.Get(s.ctx, run.ID)
	s.NoError(err)
	s.Require().NotNil(closed.EndTime)
	s.WithinDuration(end, *closed.EndTime, time.Millisecond)
	s.True(closed.Completed)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	site, run := s.createRun("trials.zonza.tv")
	tm := NewTransactionManager(s.db)
	assets := NewAssetStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		id, err := assets.Upsert(ctx, &domain.Asset{
			VSID:       "VX-TX",
			Filename:   "tx.mov",
			Username:   "tester",
			Created:    time.Now(),
			RawData:    []byte(`{}`),
			LastSyncID: run.ID,
		})
		if err != nil {
			return err
		}
		if err := assets.LinkSite(ctx, id, site.ID); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM assets WHERE vs_id = $1", "VX-TX")
	s.NoError(err)
	s.Equal(0, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	site, run := s.createRun("trials.zonza.tv")
	tm := NewTransactionManager(s.db)
	assets := NewAssetStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		id, err := assets.Upsert(ctx, &domain.Asset{
			VSID:       "VX-TX",
			Filename:   "tx.mov",
			Username:   "tester",
			Created:    time.Now(),
			RawData:    []byte(`{}`),
			LastSyncID: run.ID,
		})
		if err != nil {
			return err
		}
		return assets.LinkSite(ctx, id, site.ID)
	})
	s.NoError(err)

	var count int
	err = s.db.GetContext(s.ctx, &count,
		`SELECT COUNT(*) FROM assets a
		 JOIN asset_sites st ON st.asset_id = a.id
		 WHERE a.vs_id = $1 AND st.site_id = $2`, "VX-TX", site.ID)
	s.NoError(err)
	s.Equal(1, count)
}
