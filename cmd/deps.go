package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepforge/prepforge/internal/achievements"
	"github.com/prepforge/prepforge/internal/leveling"
	"github.com/prepforge/prepforge/internal/mastery"
	"github.com/prepforge/prepforge/internal/questionbank"
	"github.com/prepforge/prepforge/internal/session"
	"github.com/prepforge/prepforge/internal/store"
	"github.com/prepforge/prepforge/internal/tracker"
	"github.com/prepforge/prepforge/internal/xp"
)

// services bundles everything a command needs against one open store.
type services struct {
	store   *store.Store
	tracker *tracker.Tracker
	session *session.Service
	pool    *questionbank.StaticPool
	catalog *achievements.Catalog
	user    string
}

func (s *services) Close() error {
	return s.store.Close()
}

// openServices opens the store and wires the practice stack, hydrating
// in-memory state from the event log.
func openServices(ctx context.Context, cmd *cobra.Command) (*services, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	user := userID(cmd)
	repo := st.EventRepo()
	snapshots := st.SnapshotRepo()

	catalog := achievements.SeedCatalog()
	calc := xp.NewCalculator(xp.DefaultConfig())
	tr := tracker.New(repo, calc, leveling.Config{}, achievements.NewEngine(catalog)).
		WithSnapshots(snapshots)

	pool := questionbank.SeedPool()
	masteries := mastery.NewMemoryStore()
	if err := session.Hydrate(ctx, repo, snapshots, pool, masteries, user); err != nil {
		_ = st.Close()
		return nil, err
	}

	return &services{
		store:   st,
		tracker: tr,
		session: session.NewService(pool, masteries, tr, repo),
		pool:    pool,
		catalog: catalog,
		user:    user,
	}, nil
}
