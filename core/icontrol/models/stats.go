package models

// Stats represents the top level json returned by any */stats endpoint.
// Entries are keyed by an opaque composite path such as
// "https://localhost/mgmt/tm/ltm/pool/~Common~web_pool/stats".
type Stats struct {
	Entries map[string]StatsEntry `json:"entries"`
}

// StatsEntry wraps the statistics of a single object.
type StatsEntry struct {
	NestedStats struct {
		Entries map[string]StatValue `json:"entries"`
	} `json:"nestedStats"`
}

// StatValue is a single statistic. Text statistics use Description,
// counters use Value.
type StatValue struct {
	Description string   `json:"description,omitempty"`
	Value       *float64 `json:"value,omitempty"`
}

// Well-known statistic names.
const (
	StatName              = "tmName"
	StatAvailabilityState = "status.availabilityState"
	StatEnabledState      = "status.enabledState"
	StatStatusReason      = "status.statusReason"
	StatActiveMemberCount = "activeMemberCnt"
	StatMemberCount       = "memberCnt"
)

// Description returns the text description of the named statistic.
func (e StatsEntry) Description(name string) (string, bool) {
	v, ok := e.NestedStats.Entries[name]
	if !ok {
		return "", false
	}
	return v.Description, true
}
