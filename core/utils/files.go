package utils

import (
	"strings"
	"time"
)

// TimestampLayout is the layout used in generated file names.
const TimestampLayout = "20060102_150405"

// Timestamp formats t for use in a file name.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// SafeFileName replaces characters that are not safe in file names.
func SafeFileName(name string) string {
	if name == "" {
		return "unknown"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
