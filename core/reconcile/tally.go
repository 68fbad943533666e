package reconcile

import "strings"

// Availability states reported by the monitoring subsystem.
const (
	StateAvailable   = "available"
	StateOffline     = "offline"
	StateUnknown     = "unknown"
	StateUnavailable = "unavailable"
)

// Tally counts the statistics entries of one class by availability, without
// joining them to any definition.
type Tally struct {
	Class EntityClass `json:"class"`

	// Total is the number of statistics entries.
	Total int `json:"total"`

	// ByState counts entries per lowercase availability state.
	ByState map[string]int `json:"by_state"`

	// DisabledByState counts, per availability state, the entries whose
	// enabled state is "disabled".
	DisabledByState map[string]int `json:"disabled_by_state"`
}

// Count returns the number of entries in state.
func (t Tally) Count(state string) int {
	return t.ByState[state]
}

// Disabled returns the number of disabled entries in state.
func (t Tally) Disabled(state string) int {
	return t.DisabledByState[state]
}

// TallyStats builds a Tally from an index.
func TallyStats(class EntityClass, idx StatsIndex) Tally {
	t := Tally{
		Class:           class,
		Total:           len(idx),
		ByState:         make(map[string]int),
		DisabledByState: make(map[string]int),
	}
	for _, e := range idx {
		state := strings.ToLower(e.AvailabilityState)
		t.ByState[state]++
		if strings.EqualFold(e.EnabledState, "disabled") {
			t.DisabledByState[state]++
		}
	}
	return t
}
