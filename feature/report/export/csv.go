package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"lb-status/core/reconcile"
)

// DefaultDelimiter separates CSV fields when none is configured.
const DefaultDelimiter = ';'

// Delimiter returns the first rune of s, or DefaultDelimiter.
func Delimiter(s string) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return DefaultDelimiter
	}
	return r
}

// WriteCSV writes the list view of rows.
func WriteCSV(w io.Writer, rows []reconcile.ReportRow, delimiter rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(Record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// TallyColumns is the header of the statistics-only summary.
var TallyColumns = []string{
	"Datacenter",
	"Device",
	"Object Type",
	"Available",
	"Unavailable",
	"Offline",
	"Unknown",
	"Total",
}

// TallyRow is the statistics tally of one class on one device.
type TallyRow struct {
	DataCenter string
	Device     string
	Tally      reconcile.Tally
}

// WriteTallyCSV writes one line per device and class. Available, offline and
// unknown cells read "n (m Disabled)".
func WriteTallyCSV(w io.Writer, rows []TallyRow, delimiter rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	if err := cw.Write(TallyColumns); err != nil {
		return err
	}
	for _, r := range rows {
		t := r.Tally
		record := []string{
			r.DataCenter,
			r.Device,
			ClassLabel(t.Class),
			withDisabled(t, reconcile.StateAvailable),
			strconv.Itoa(t.Count(reconcile.StateUnavailable)),
			withDisabled(t, reconcile.StateOffline),
			withDisabled(t, reconcile.StateUnknown),
			strconv.Itoa(t.Total),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func withDisabled(t reconcile.Tally, state string) string {
	return fmt.Sprintf("%d (%d Disabled)", t.Count(state), t.Disabled(state))
}

// ClassLabel returns the display name of a class.
func ClassLabel(class reconcile.EntityClass) string {
	switch class {
	case reconcile.ClassVirtual:
		return "Virtual Servers"
	case reconcile.ClassPool:
		return "Pools"
	case reconcile.ClassNode:
		return "Nodes"
	}
	return string(class)
}
