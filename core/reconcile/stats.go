package reconcile

import (
	"sort"

	"lb-status/core/icontrol/models"

	"go.uber.org/zap"
)

// NotAvailable stands in for a status field missing from a statistics entry.
const NotAvailable = "N/A"

// StatsIndex maps canonical keys to statistics entries.
type StatsIndex map[string]StatisticsEntry

// Has reports whether key is indexed.
func (idx StatsIndex) Has(key string) bool {
	_, ok := idx[key]
	return ok
}

// Lookup finds the entry of an entity by trying fullPath, then the other key
// encodings in KeyStrategies order.
func (idx StatsIndex) Lookup(fullPath string) (StatisticsEntry, bool) {
	key, ok := Resolve(fullPath, idx.Has)
	if !ok {
		return StatisticsEntry{}, false
	}
	return idx[key], true
}

// BuildStatsIndex indexes one statistics payload. Entries are keyed by their
// self-reported tmName when present, otherwise by the normalized composite
// key. A nil or empty payload yields an empty index. When two entries
// normalize to the same key the later one, in raw key order, wins and the
// collision is logged; the number of collisions is returned.
func BuildStatsIndex(payload *models.Stats, class EntityClass, logger *zap.Logger) (StatsIndex, int) {
	idx := make(StatsIndex)
	if payload == nil || len(payload.Entries) == 0 {
		return idx, 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	rawKeys := make([]string, 0, len(payload.Entries))
	for k := range payload.Entries {
		rawKeys = append(rawKeys, k)
	}
	sort.Strings(rawKeys)

	collisions := 0
	for _, raw := range rawKeys {
		entry := newStatisticsEntry(raw, payload.Entries[raw])
		if prev, exists := idx[entry.SubjectKey]; exists {
			collisions++
			logger.Warn("Statistics key collision, keeping later entry",
				zap.String("class", string(class)),
				zap.String("key", entry.SubjectKey),
				zap.String("previous_availability", prev.AvailabilityState),
				zap.String("raw_key", raw),
			)
		}
		idx[entry.SubjectKey] = entry
	}
	return idx, collisions
}

func newStatisticsEntry(raw string, e models.StatsEntry) StatisticsEntry {
	key := ""
	if name, ok := e.Description(models.StatName); ok && name != "" {
		key = Normalize(name)
	} else {
		key = Normalize(raw)
	}

	entry := StatisticsEntry{
		SubjectKey: key,
		Counters:   make(map[string]float64),
	}
	entry.AvailabilityState = describe(e, models.StatAvailabilityState)
	entry.EnabledState = describe(e, models.StatEnabledState)
	entry.StatusReason = describe(e, models.StatStatusReason)

	for name, v := range e.NestedStats.Entries {
		if v.Value != nil {
			entry.Counters[name] = *v.Value
		}
	}
	return entry
}

// describe returns the text statistic, or NotAvailable when it is missing.
func describe(e models.StatsEntry, name string) string {
	if d, ok := e.Description(name); ok {
		return d
	}
	return NotAvailable
}
