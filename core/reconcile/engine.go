package reconcile

import (
	"context"
	"strconv"

	"lb-status/core/icontrol/models"
	"lb-status/core/utils"

	"go.uber.org/zap"
)

// ReconcileAll fetches every collection from spec.Source and joins
// them into report rows. Only a failure to fetch a whole collection is
// returned as an error; per-entity problems are logged and counted.
func ReconcileAll(ctx context.Context, spec *Spec) (*Result, error) {
	snap, err := Fetch(ctx, spec)
	if err != nil {
		return nil, err
	}
	return Join(snap, spec.logger()), nil
}

// Join reconciles a fetched snapshot. It is a pure single pass: identical
// snapshots produce identical results, ordered by the input listings.
func Join(snap *Snapshot, logger *zap.Logger) *Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	j := &joiner{
		logger: logger,
		result: &Result{
			Rows:    []ReportRow{},
			Summary: NewSummary(),
			Diagnostics: Diagnostics{
				NoStats: map[EntityClass]int{ClassVirtual: 0, ClassPool: 0, ClassNode: 0},
			},
		},
		pools:          make(map[string]*PoolRecord),
		nodesByAddress: make(map[string]*NodeRecord),
	}

	// Build indices
	vIdx := j.index(snap.VirtualStats, ClassVirtual)
	pIdx := j.index(snap.PoolStats, ClassPool)
	nIdx := j.index(snap.NodeStats, ClassNode)

	if snap.Nodes != nil {
		j.joinNodes(snap.Nodes.Items, nIdx)
	}
	if snap.Pools != nil {
		j.joinPools(snap.Pools.Items, pIdx, snap)
	}
	if snap.Virtuals != nil {
		j.joinVirtuals(snap.Virtuals.Items, vIdx)
	}

	return j.result
}

type joiner struct {
	logger         *zap.Logger
	result         *Result
	pools          map[string]*PoolRecord
	nodesByAddress map[string]*NodeRecord
}

func (j *joiner) index(payload *models.Stats, class EntityClass) StatsIndex {
	idx, collisions := BuildStatsIndex(payload, class, j.logger)
	j.result.Diagnostics.KeyCollisions += collisions
	return idx
}

// skip logs an entity without statistics and counts it.
func (j *joiner) skip(class EntityClass, name, fullPath string) {
	j.result.Diagnostics.NoStats[class]++
	j.logger.Warn("Could not get stats, skipping",
		zap.String("class", string(class)),
		zap.String("name", name),
		zap.String("full_path", fullPath),
		zap.Error(ErrStatsMissing),
	)
}

func (j *joiner) joinNodes(nodes []models.Node, idx StatsIndex) {
	for _, n := range nodes {
		stats, ok := idx.Lookup(entityKey(n.FullPath, n.Name))
		if !ok {
			j.skip(ClassNode, n.Name, n.FullPath)
			continue
		}

		rec := NodeRecord{
			Name:      n.Name,
			FullPath:  n.FullPath,
			Partition: n.Partition,
			Address:   n.Address,
			Status:    stats.Status,
		}
		j.result.Nodes = append(j.result.Nodes, rec)
		j.result.Summary.Node[rec.AvailabilityState]++

		if prev, exists := j.nodesByAddress[rec.Address]; exists {
			j.logger.Warn("Duplicate node address, keeping later node",
				zap.String("address", rec.Address),
				zap.String("previous", prev.FullPath),
				zap.String("full_path", rec.FullPath),
			)
		}
		stored := rec
		j.nodesByAddress[rec.Address] = &stored
	}
}

func (j *joiner) joinPools(pools []models.Pool, idx StatsIndex, snap *Snapshot) {
	for _, p := range pools {
		stats, ok := idx.Lookup(entityKey(p.FullPath, p.Name))
		if !ok {
			j.skip(ClassPool, p.Name, p.FullPath)
			continue
		}

		key := Normalize(entityKey(p.FullPath, p.Name))
		rec := PoolRecord{
			Name:              p.Name,
			FullPath:          p.FullPath,
			Partition:         p.Partition,
			Monitor:           p.Monitor,
			Status:            stats.Status,
			ActiveMemberCount: stats.Counter(models.StatActiveMemberCount),
			TotalMemberCount:  stats.Counter(models.StatMemberCount),
			Members:           []MemberRecord{},
		}

		if err, failed := snap.MemberErrors[key]; failed {
			j.result.Diagnostics.MemberFetchFailures++
			j.logger.Warn("Pool members unavailable, reporting pool without members",
				zap.String("full_path", p.FullPath),
				zap.Error(ErrMembersUnavailable),
				zap.NamedError("cause", err),
			)
		}
		if list := snap.Members[key]; list != nil {
			for _, m := range list.Items {
				member := newMemberRecord(m)
				if _, found := j.node(member.Address); !found {
					j.result.Diagnostics.UnresolvedMembers++
					j.logger.Debug("Member node not found, node fields left empty",
						zap.String("pool", p.FullPath),
						zap.String("member", member.Name),
						zap.String("address", member.Address),
						zap.Error(ErrNodeUnresolved),
					)
				}
				rec.Members = append(rec.Members, member)
			}
		}

		j.result.Pools = append(j.result.Pools, rec)
		j.result.Summary.Pool[rec.AvailabilityState]++
		stored := rec
		j.pools[key] = &stored
	}
}

func (j *joiner) joinVirtuals(virtuals []models.Virtual, idx StatsIndex) {
	for _, v := range virtuals {
		stats, ok := idx.Lookup(entityKey(v.FullPath, v.Name))
		if !ok {
			j.skip(ClassVirtual, v.Name, v.FullPath)
			continue
		}

		rec := VirtualServerRecord{
			Name:        v.Name,
			FullPath:    v.FullPath,
			Partition:   v.Partition,
			Description: v.Description,
			Status:      stats.Status,
		}
		if v.Destination != "" {
			rec.DestinationAddress, rec.DestinationPort = ParseDestination(v.Destination)
		}

		var pool *PoolRecord
		if v.Pool != "" {
			rec.PoolRef = Normalize(v.Pool)
			if key, found := Resolve(v.Pool, j.hasPool); found {
				rec.PoolRef = key
				pool = j.pools[key]
			} else {
				j.result.Diagnostics.UnresolvedPools++
				j.logger.Warn("Pool reference not resolved, pool fields left empty",
					zap.String("virtual", v.FullPath),
					zap.String("pool", v.Pool),
				)
			}
		}

		j.result.Virtuals = append(j.result.Virtuals, rec)
		j.result.Summary.Virtual[rec.AvailabilityState]++
		j.result.Rows = append(j.result.Rows, j.rows(rec, pool)...)
	}
}

// rows emits one row per pool member, or a single row when there is no pool
// or the pool has no members.
func (j *joiner) rows(vs VirtualServerRecord, pool *PoolRecord) []ReportRow {
	base := ReportRow{
		VirtualName:        vs.Name,
		VirtualFullPath:    vs.FullPath,
		VirtualPartition:   vs.Partition,
		VirtualDescription: vs.Description,
		DestinationAddress: vs.DestinationAddress,
		DestinationPort:    vs.DestinationPort,
		VirtualStatus:      vs.Status,
		PoolRef:            vs.PoolRef,
	}
	if pool == nil {
		return []ReportRow{base}
	}

	base.PoolName = pool.Name
	base.PoolMonitor = pool.Monitor
	base.PoolStatus = pool.Status
	base.PoolActiveMemberCount = strconv.FormatInt(pool.ActiveMemberCount, 10)
	base.PoolTotalMemberCount = strconv.FormatInt(pool.TotalMemberCount, 10)

	if len(pool.Members) == 0 {
		return []ReportRow{base}
	}

	rows := make([]ReportRow, 0, len(pool.Members))
	for _, m := range pool.Members {
		row := base
		row.MemberName = m.Name
		row.MemberAddress = m.Address
		row.MemberPort = m.Port
		row.MemberState = m.State
		row.MemberSession = m.Session
		if node, ok := j.node(m.Address); ok {
			row.NodeName = node.Name
			row.NodeFullPath = node.FullPath
			row.NodeStatus = node.Status
		}
		rows = append(rows, row)
	}
	return rows
}

func (j *joiner) hasPool(key string) bool {
	_, ok := j.pools[key]
	return ok
}

// node looks up a node by exact address, then without the route domain.
func (j *joiner) node(address string) (*NodeRecord, bool) {
	if address == "" {
		return nil, false
	}
	if n, ok := j.nodesByAddress[address]; ok {
		return n, true
	}
	if stripped := StripRouteDomain(address); stripped != address {
		n, ok := j.nodesByAddress[stripped]
		return n, ok
	}
	return nil, false
}

func newMemberRecord(m models.Member) MemberRecord {
	rec := MemberRecord{
		Name:    m.Name,
		Address: m.Address,
		State:   m.State,
		Session: m.Session,
	}
	if m.Port != nil {
		rec.Port = utils.ToString(m.Port)
	}
	if rec.Port == "" {
		_, rec.Port = ParseDestination(m.Name)
	}
	return rec
}

// entityKey prefers fullPath and falls back to the bare name.
func entityKey(fullPath, name string) string {
	if fullPath != "" {
		return fullPath
	}
	return name
}
