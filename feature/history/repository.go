package history

import (
	"context"
	"fmt"
	"sort"
	"time"

	"lb-status/core/reconcile"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultLimit is the number of runs returned when no limit is given.
const DefaultLimit = 20

// MaxLimit caps the number of runs returned at once.
const MaxLimit = 500

// Repository persists run summaries.
type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Migrate creates or updates the history tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&Run{}, &StatusCount{})
}

// Record stores the summary of a finished run.
func (r *Repository) Record(ctx context.Context, device string, started time.Time, result *reconcile.Result) error {
	run := Run{
		ID:                  uuid.NewString(),
		Device:              device,
		StartedAt:           started,
		FinishedAt:          r.now(),
		Rows:                len(result.Rows),
		NoStatsVirtual:      result.Diagnostics.NoStats[reconcile.ClassVirtual],
		NoStatsPool:         result.Diagnostics.NoStats[reconcile.ClassPool],
		NoStatsNode:         result.Diagnostics.NoStats[reconcile.ClassNode],
		UnresolvedMembers:   result.Diagnostics.UnresolvedMembers,
		UnresolvedPools:     result.Diagnostics.UnresolvedPools,
		MemberFetchFailures: result.Diagnostics.MemberFetchFailures,
		Counts:              countsOf(result.Summary),
	}

	if err := r.db.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Recent returns the latest runs, newest first, with their counts. A device
// filters by device label when not empty.
func (r *Repository) Recent(ctx context.Context, device string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	q := r.db.WithContext(ctx).
		Preload("Counts", func(db *gorm.DB) *gorm.DB {
			return db.Order("class, state")
		}).
		Order("started_at desc").
		Limit(limit)
	if device != "" {
		q = q.Where("device = ?", device)
	}

	var runs []Run
	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// countsOf flattens a summary in class then state order.
func countsOf(summary reconcile.Summary) []StatusCount {
	var counts []StatusCount
	for _, class := range reconcile.Classes {
		byState := summary.For(class)
		states := make([]string, 0, len(byState))
		for s := range byState {
			states = append(states, s)
		}
		sort.Strings(states)
		for _, s := range states {
			counts = append(counts, StatusCount{Class: string(class), State: s, Count: byState[s]})
		}
	}
	return counts
}
