package report

import "fmt"

// Output formats.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
	FormatBoth = "both"
)

// Config holds output settings for generated reports.
type Config struct {
	// OutputDir receives the report files.
	OutputDir string `mapstructure:"output_dir" default:"."`
	// Format selects the report files (xlsx, csv, both).
	Format string `mapstructure:"format" default:"xlsx"`
	// Delimiter separates CSV fields.
	Delimiter string `mapstructure:"delimiter" default:";"`
	// Archive uploads every report file to object storage.
	Archive bool `mapstructure:"archive" default:"false"`
	// History records every run in the database.
	History bool `mapstructure:"history" default:"false"`
}

// Extensions returns the file extensions selected by Format.
func (c Config) Extensions() ([]string, error) {
	switch c.Format {
	case FormatXLSX, "":
		return []string{FormatXLSX}, nil
	case FormatCSV:
		return []string{FormatCSV}, nil
	case FormatBoth:
		return []string{FormatXLSX, FormatCSV}, nil
	default:
		return nil, fmt.Errorf("unsupported report format %q", c.Format)
	}
}
