package reconcile

import "go.uber.org/zap"

// EntityClass identifies one of the three reconciled object classes.
type EntityClass string

const (
	// ClassVirtual is a virtual server.
	ClassVirtual EntityClass = "virtual"
	// ClassPool is a pool.
	ClassPool EntityClass = "pool"
	// ClassNode is a node.
	ClassNode EntityClass = "node"
)

// Classes lists the entity classes in report order.
var Classes = []EntityClass{ClassVirtual, ClassPool, ClassNode}

// Status is the status triple reported by the statistics API.
type Status struct {
	AvailabilityState string `json:"availability_state"`
	EnabledState      string `json:"enabled_state"`
	StatusReason      string `json:"status_reason"`
}

// StatisticsEntry is one normalized statistics record.
type StatisticsEntry struct {
	// SubjectKey is the canonical "/Partition/Name" key.
	SubjectKey string
	Status
	// Counters holds every numeric statistic of the entry by name.
	Counters map[string]float64
}

// Counter returns the named counter, or zero when absent.
func (e StatisticsEntry) Counter(name string) int64 {
	return int64(e.Counters[name])
}

// VirtualServerRecord is a virtual server joined with its statistics.
type VirtualServerRecord struct {
	Name               string `json:"name"`
	FullPath           string `json:"full_path"`
	Partition          string `json:"partition"`
	Description        string `json:"description"`
	DestinationAddress string `json:"destination_address"`
	DestinationPort    string `json:"destination_port"`
	// PoolRef is the canonical pool path, empty when the virtual server has no pool.
	PoolRef string `json:"pool_ref"`
	Status
}

// MemberRecord is one entry of a pool's live member listing.
type MemberRecord struct {
	Name string `json:"name"`
	// Address is the lookup key into the node records.
	Address string `json:"address"`
	Port    string `json:"port"`
	State   string `json:"state"`
	Session string `json:"session"`
}

// PoolRecord is a pool joined with its statistics and member listing.
type PoolRecord struct {
	Name      string `json:"name"`
	FullPath  string `json:"full_path"`
	Partition string `json:"partition"`
	Monitor   string `json:"monitor"`
	Status
	// ActiveMemberCount and TotalMemberCount come from statistics and are
	// never reconciled against len(Members).
	ActiveMemberCount int64          `json:"active_member_count"`
	TotalMemberCount  int64          `json:"total_member_count"`
	Members           []MemberRecord `json:"members"`
}

// NodeRecord is a node joined with its statistics.
type NodeRecord struct {
	Name      string `json:"name"`
	FullPath  string `json:"full_path"`
	Partition string `json:"partition"`
	Address   string `json:"address"`
	Status
}

// ReportRow is the flattened projection of one virtual server, its pool and
// one pool member with its node.
type ReportRow struct {
	// Device labels are filled in by the caller.
	Device     string `json:"device,omitempty"`
	DataCenter string `json:"data_center,omitempty"`
	Tier       string `json:"tier,omitempty"`

	VirtualName        string `json:"virtual_name"`
	VirtualFullPath    string `json:"virtual_full_path"`
	VirtualPartition   string `json:"virtual_partition"`
	VirtualDescription string `json:"virtual_description"`
	DestinationAddress string `json:"destination_address"`
	DestinationPort    string `json:"destination_port"`
	VirtualStatus      Status `json:"virtual_status"`

	PoolRef               string `json:"pool_ref"`
	PoolName              string `json:"pool_name"`
	PoolMonitor           string `json:"pool_monitor"`
	PoolStatus            Status `json:"pool_status"`
	PoolActiveMemberCount string `json:"pool_active_member_count"`
	PoolTotalMemberCount  string `json:"pool_total_member_count"`

	MemberName    string `json:"member_name"`
	MemberAddress string `json:"member_address"`
	MemberPort    string `json:"member_port"`
	MemberState   string `json:"member_state"`
	MemberSession string `json:"member_session"`

	NodeName     string `json:"node_name"`
	NodeFullPath string `json:"node_full_path"`
	NodeStatus   Status `json:"node_status"`
}

// Destination returns "address:port", or "" when the address is unknown.
func (r ReportRow) Destination() string {
	if r.DestinationAddress == "" {
		return ""
	}
	return r.DestinationAddress + ":" + r.DestinationPort
}

// StatusCounts is a frequency counter keyed by availability state.
type StatusCounts map[string]int

// Total returns the sum over all states.
func (c StatusCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Summary holds one StatusCounts per entity class.
type Summary struct {
	Virtual StatusCounts `json:"virtual"`
	Pool    StatusCounts `json:"pool"`
	Node    StatusCounts `json:"node"`
}

// NewSummary returns a Summary with empty counters.
func NewSummary() Summary {
	return Summary{
		Virtual: StatusCounts{},
		Pool:    StatusCounts{},
		Node:    StatusCounts{},
	}
}

// For returns the counter of the given class.
func (s Summary) For(class EntityClass) StatusCounts {
	switch class {
	case ClassVirtual:
		return s.Virtual
	case ClassPool:
		return s.Pool
	case ClassNode:
		return s.Node
	}
	return nil
}

// Diagnostics tallies the recoverable problems met during a run.
type Diagnostics struct {
	// NoStats counts entities skipped because no statistics entry matched.
	NoStats map[EntityClass]int `json:"no_stats"`
	// UnresolvedMembers counts pool members whose address matched no node.
	UnresolvedMembers int `json:"unresolved_members"`
	// UnresolvedPools counts virtual servers whose pool reference matched no pool.
	UnresolvedPools int `json:"unresolved_pools"`
	// MemberFetchFailures counts pools whose member listing could not be fetched.
	MemberFetchFailures int `json:"member_fetch_failures"`
	// KeyCollisions counts statistics entries overwritten by a later entry.
	KeyCollisions int `json:"key_collisions"`
}

// Result is the output of a reconciliation run.
type Result struct {
	Rows        []ReportRow           `json:"rows"`
	Summary     Summary               `json:"summary"`
	Diagnostics Diagnostics           `json:"diagnostics"`
	Virtuals    []VirtualServerRecord `json:"-"`
	Pools       []PoolRecord          `json:"-"`
	Nodes       []NodeRecord          `json:"-"`
}

// Spec bundles the parameters of a reconciliation run.
type Spec struct {
	// Source supplies the raw collections.
	Source Source

	// Logger receives diagnostic entries. A no-op logger is used when nil.
	Logger *zap.Logger

	// Device names the load balancer in log entries.
	Device string
}

func (s *Spec) logger() *zap.Logger {
	l := s.Logger
	if l == nil {
		l = zap.NewNop()
	}
	if s.Device != "" {
		l = l.With(zap.String("device", s.Device))
	}
	return l
}
