package reconcile

import (
	"context"

	"lb-status/core/icontrol/models"
)

// Source supplies the raw collections of one load balancer. Each method
// performs a single fetch; a returned error is treated as a failure of the
// whole collection.
type Source interface {
	// ListVirtuals returns the virtual server definitions.
	ListVirtuals(ctx context.Context) (*models.VirtualList, error)

	// VirtualStats returns the virtual server statistics.
	VirtualStats(ctx context.Context) (*models.Stats, error)

	// ListPools returns the pool definitions.
	ListPools(ctx context.Context) (*models.PoolList, error)

	// PoolStats returns the pool statistics.
	PoolStats(ctx context.Context) (*models.Stats, error)

	// ListPoolMembers returns the live member listing of one pool.
	// It follows the pool's members reference link.
	ListPoolMembers(ctx context.Context, pool models.Pool) (*models.MemberList, error)

	// ListNodes returns the node definitions.
	ListNodes(ctx context.Context) (*models.NodeList, error)

	// NodeStats returns the node statistics.
	NodeStats(ctx context.Context) (*models.Stats, error)
}
