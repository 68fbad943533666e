// Package reconcile joins the virtual server, pool and node collections of a
// load balancer with their statistics and with each other, producing flat
// report rows and per-class availability counters.
//
// The three collections are fetched independently and keyed inconsistently:
// definitions carry a "/Partition/Name" fullPath, statistics entries are
// keyed by composite URLs such as ".../virtual/~Common~vs_web/stats", and
// pool members point at nodes by address only.
//
// # Architecture
//
// 1. Key normalizer: an ordered list of KeyStrategies converting every raw
// key encoding into the canonical fullPath. Resolve tries an exact match
// first and then each strategy in turn against the set of known keys.
//
// 2. Statistics indexer: BuildStatsIndex maps canonical keys to
// StatisticsEntry values, preferring the entry's own tmName descriptor.
//
// 3. Engine: Fetch materializes a Snapshot (the three classes are fetched
// concurrently), then Join walks nodes, pools and virtual servers once and
// emits one ReportRow per (virtual server, pool member) pair.
//
// # Failure semantics
//
// A top-level collection that cannot be fetched aborts the run with a
// *CollectionFetchError. Entities without statistics are skipped and counted
// in Diagnostics; members whose node is unknown keep empty node fields.
//
// # Usage
//
//	spec := &reconcile.Spec{Source: client, Logger: log, Device: "lb01"}
//	result, err := reconcile.ReconcileAll(ctx, spec)
//	if errors.Is(err, reconcile.ErrCollectionFetch) {
//	    // whole collection missing
//	}
package reconcile
