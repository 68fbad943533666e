package history

import "time"

// Run is one recorded reconciliation run.
type Run struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Device     string    `gorm:"size:255;index" json:"device"`
	StartedAt  time.Time `gorm:"index" json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Rows       int       `json:"rows"`

	NoStatsVirtual      int `json:"no_stats_virtual"`
	NoStatsPool         int `json:"no_stats_pool"`
	NoStatsNode         int `json:"no_stats_node"`
	UnresolvedMembers   int `json:"unresolved_members"`
	UnresolvedPools     int `json:"unresolved_pools"`
	MemberFetchFailures int `json:"member_fetch_failures"`

	Counts []StatusCount `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"counts"`
}

// TableName overrides the table name.
func (Run) TableName() string {
	return "lb_status_runs"
}

// StatusCount is the number of entities of a class in one state.
type StatusCount struct {
	ID    uint   `gorm:"primaryKey" json:"-"`
	RunID string `gorm:"size:36;index" json:"-"`
	Class string `gorm:"size:16" json:"class"`
	State string `gorm:"size:64" json:"state"`
	Count int    `json:"count"`
}

// TableName overrides the table name.
func (StatusCount) TableName() string {
	return "lb_status_counts"
}
