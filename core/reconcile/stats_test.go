package reconcile

import (
	"testing"

	"lb-status/core/icontrol/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func value(v float64) *float64 {
	return &v
}

// statsEntry builds a statistics entry. An empty tmName leaves the
// descriptor out so the composite key is used.
func statsEntry(tmName, availability, enabled, reason string, counters map[string]float64) models.StatsEntry {
	var e models.StatsEntry
	e.NestedStats.Entries = map[string]models.StatValue{
		models.StatAvailabilityState: {Description: availability},
		models.StatEnabledState:      {Description: enabled},
		models.StatStatusReason:      {Description: reason},
	}
	if tmName != "" {
		e.NestedStats.Entries[models.StatName] = models.StatValue{Description: tmName}
	}
	for name, v := range counters {
		e.NestedStats.Entries[name] = models.StatValue{Value: value(v)}
	}
	return e
}

func TestBuildStatsIndex_PrefersTmName(t *testing.T) {
	payload := &models.Stats{Entries: map[string]models.StatsEntry{
		"https://localhost/mgmt/tm/ltm/virtual/~Common~vs_a/stats": statsEntry("/Common/vs_renamed", "available", "enabled", "ok", nil),
	}}

	idx, collisions := BuildStatsIndex(payload, ClassVirtual, nil)
	assert.Equal(t, 0, collisions)
	require.Len(t, idx, 1)
	assert.True(t, idx.Has("/Common/vs_renamed"))
	assert.False(t, idx.Has("/Common/vs_a"))
}

func TestBuildStatsIndex_FallsBackToCompositeKey(t *testing.T) {
	payload := &models.Stats{Entries: map[string]models.StatsEntry{
		"https://localhost/mgmt/tm/ltm/pool/~Common~web_pool/stats": statsEntry("", "offline", "enabled", "down", map[string]float64{
			models.StatActiveMemberCount: 1,
			models.StatMemberCount:       3,
		}),
	}}

	idx, _ := BuildStatsIndex(payload, ClassPool, nil)
	entry, ok := idx.Lookup("/Common/web_pool")
	require.True(t, ok)
	assert.Equal(t, "/Common/web_pool", entry.SubjectKey)
	assert.Equal(t, "offline", entry.AvailabilityState)
	assert.Equal(t, "enabled", entry.EnabledState)
	assert.Equal(t, "down", entry.StatusReason)
	assert.Equal(t, int64(1), entry.Counter(models.StatActiveMemberCount))
	assert.Equal(t, int64(3), entry.Counter(models.StatMemberCount))
	assert.Equal(t, int64(0), entry.Counter("missing"))
}

func TestBuildStatsIndex_EmptyPayload(t *testing.T) {
	idx, collisions := BuildStatsIndex(nil, ClassNode, nil)
	assert.Empty(t, idx)
	assert.Equal(t, 0, collisions)

	idx, _ = BuildStatsIndex(&models.Stats{}, ClassNode, nil)
	assert.Empty(t, idx)
}

func TestBuildStatsIndex_CollisionKeepsLaterAndWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	payload := &models.Stats{Entries: map[string]models.StatsEntry{
		"https://localhost/mgmt/tm/ltm/virtual/~Common~vs_a/stats": statsEntry("", "available", "enabled", "first", nil),
		"https://localhost/mgmt/tm/ltm/virtual/~Common~vs_b/stats": statsEntry("/Common/vs_a", "offline", "enabled", "second", nil),
	}}

	idx, collisions := BuildStatsIndex(payload, ClassVirtual, zap.New(core))
	assert.Equal(t, 1, collisions)
	require.Len(t, idx, 1)
	assert.Equal(t, "second", idx["/Common/vs_a"].StatusReason)
	assert.Equal(t, 1, logs.FilterMessage("Statistics key collision, keeping later entry").Len())
}

func TestBuildStatsIndex_MissingStatusFields(t *testing.T) {
	var e models.StatsEntry
	e.NestedStats.Entries = map[string]models.StatValue{
		models.StatName: {Description: "/Common/n1"},
	}
	idx, _ := BuildStatsIndex(&models.Stats{Entries: map[string]models.StatsEntry{"k": e}}, ClassNode, nil)
	assert.Equal(t, NotAvailable, idx["/Common/n1"].AvailabilityState)
	assert.Equal(t, NotAvailable, idx["/Common/n1"].StatusReason)
}
