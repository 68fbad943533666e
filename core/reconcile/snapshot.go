package reconcile

import (
	"context"
	"time"

	"lb-status/core/icontrol/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Snapshot holds every collection fetched for one run. It is fully
// materialized before Join starts and never reused across runs.
type Snapshot struct {
	Virtuals     *models.VirtualList
	VirtualStats *models.Stats
	Pools        *models.PoolList
	PoolStats    *models.Stats
	Nodes        *models.NodeList
	NodeStats    *models.Stats

	// Members holds the member listing of each pool by pool fullPath.
	Members map[string]*models.MemberList

	// MemberErrors records pools whose member listing could not be fetched.
	MemberErrors map[string]error

	// Fetched is the time the snapshot was completed.
	Fetched time.Time
}

// Fetch retrieves all collections from the source. The three entity classes
// are fetched concurrently; member listings are fetched after the pool
// listing in the pool branch. Any failure of a top-level collection aborts
// the fetch with a *CollectionFetchError.
func Fetch(ctx context.Context, spec *Spec) (*Snapshot, error) {
	var (
		snap = &Snapshot{
			Members:      make(map[string]*models.MemberList),
			MemberErrors: make(map[string]error),
		}
		src    = spec.Source
		logger = spec.logger()
	)

	g, gctx := errgroup.WithContext(ctx)

	// Virtual servers
	g.Go(func() error {
		v, err := src.ListVirtuals(gctx)
		if err != nil {
			return &CollectionFetchError{Class: ClassVirtual, Collection: CollectionListing, Err: err}
		}
		snap.Virtuals = v
		return nil
	})
	g.Go(func() error {
		s, err := src.VirtualStats(gctx)
		if err != nil {
			return &CollectionFetchError{Class: ClassVirtual, Collection: CollectionStatistics, Err: err}
		}
		snap.VirtualStats = s
		return nil
	})

	// Pools, then their member listings
	g.Go(func() error {
		p, err := src.ListPools(gctx)
		if err != nil {
			return &CollectionFetchError{Class: ClassPool, Collection: CollectionListing, Err: err}
		}
		snap.Pools = p
		if p == nil {
			return nil
		}
		for _, pool := range p.Items {
			if err := gctx.Err(); err != nil {
				return err
			}
			key := Normalize(entityKey(pool.FullPath, pool.Name))
			members, err := src.ListPoolMembers(gctx, pool)
			if err != nil {
				snap.MemberErrors[key] = err
				logger.Warn("Failed to fetch pool members",
					zap.String("class", string(ClassPool)),
					zap.String("full_path", pool.FullPath),
					zap.Error(err),
				)
				continue
			}
			snap.Members[key] = members
		}
		return nil
	})
	g.Go(func() error {
		s, err := src.PoolStats(gctx)
		if err != nil {
			return &CollectionFetchError{Class: ClassPool, Collection: CollectionStatistics, Err: err}
		}
		snap.PoolStats = s
		return nil
	})

	// Nodes
	g.Go(func() error {
		n, err := src.ListNodes(gctx)
		if err != nil {
			return &CollectionFetchError{Class: ClassNode, Collection: CollectionListing, Err: err}
		}
		snap.Nodes = n
		return nil
	})
	g.Go(func() error {
		s, err := src.NodeStats(gctx)
		if err != nil {
			return &CollectionFetchError{Class: ClassNode, Collection: CollectionStatistics, Err: err}
		}
		snap.NodeStats = s
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.Fetched = time.Now()
	return snap, nil
}
