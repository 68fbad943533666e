package export

import (
	"fmt"
	"time"

	"lb-status/core/reconcile"
	"lb-status/core/utils"
)

// Columns is the header of the list view, shared by CSV and workbook output.
var Columns = []string{
	"Load Balancer",
	"Data Center",
	"Tier",
	"Virtual Server",
	"VS Description",
	"VS Destination",
	"VS Service Port",
	"VS Status",
	"VS Status Reason",
	"Pool Name",
	"Pool Status",
	"Pool Status Reason",
	"Pool Active Members",
	"Pool Total Members",
	"Member Name",
	"Member Address",
	"Member Port",
	"Member State",
	"Member Session",
	"Node Name",
	"Node Status",
	"Node Status Reason",
	"Node Enabled State",
}

// Record flattens a row in Columns order.
func Record(r reconcile.ReportRow) []string {
	return []string{
		r.Device,
		r.DataCenter,
		r.Tier,
		r.VirtualName,
		r.VirtualDescription,
		r.Destination(),
		r.DestinationPort,
		r.VirtualStatus.AvailabilityState,
		r.VirtualStatus.StatusReason,
		r.PoolName,
		r.PoolStatus.AvailabilityState,
		r.PoolStatus.StatusReason,
		r.PoolActiveMemberCount,
		r.PoolTotalMemberCount,
		r.MemberName,
		r.MemberAddress,
		r.MemberPort,
		r.MemberState,
		r.MemberSession,
		r.NodeName,
		r.NodeStatus.AvailabilityState,
		r.NodeStatus.StatusReason,
		r.NodeStatus.EnabledState,
	}
}

// ReportFileName returns "<host>_<timestamp>_lb_report.<ext>".
func ReportFileName(host string, at time.Time, ext string) string {
	return fmt.Sprintf("%s_%s_lb_report.%s", utils.SafeFileName(host), utils.Timestamp(at), ext)
}

// SummaryFileName returns "lb_status_summary_<timestamp>.csv".
func SummaryFileName(at time.Time) string {
	return fmt.Sprintf("lb_status_summary_%s.csv", utils.Timestamp(at))
}
