// Package export renders reconciliation results as files.
//
// The list view (one line per virtual server and pool member) is written as
// delimited CSV or as the List sheet of an XLSX workbook whose Summary sheet
// holds the per-class availability counters. WriteTallyCSV renders the
// statistics-only summary across devices.
package export
