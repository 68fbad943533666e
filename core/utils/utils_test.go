package utils_test

import (
	"testing"
	"time"

	"lb-status/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Nil", nil, ""},
		{"String", "443", "443"},
		{"Bytes", []byte("80"), "80"},
		{"WholeFloat", float64(8080), "8080"},
		{"Fraction", 1.5, "1.5"},
		{"Int", 22, "22"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToString(tt.in))
		})
	}
}

func TestToInt64(t *testing.T) {
	assert.Equal(t, int64(0), utils.ToInt64(nil))
	assert.Equal(t, int64(4), utils.ToInt64(float64(4)))
	assert.Equal(t, int64(12), utils.ToInt64("12"))
	assert.Equal(t, int64(3), utils.ToInt64(" 3.0 "))
	assert.Equal(t, int64(0), utils.ToInt64("n/a"))
	assert.Equal(t, int64(7), utils.ToInt64([]byte("7")))
}

func TestSafeFileName(t *testing.T) {
	assert.Equal(t, "10.0.0.1", utils.SafeFileName("10.0.0.1"))
	assert.Equal(t, "lb_dc1_prod", utils.SafeFileName("lb/dc1:prod"))
	assert.Equal(t, "unknown", utils.SafeFileName(""))
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2025, 6, 4, 9, 5, 1, 0, time.UTC)
	assert.Equal(t, "20250604_090501", utils.Timestamp(ts))
}
