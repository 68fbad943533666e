package server_test

import (
	"testing"
	"time"

	"lb-status/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsSecured(t *testing.T) {
	assert.True(t, server.Config{ApiKey: "k"}.IsSecured())
	assert.False(t, server.Config{}.IsSecured())
}

func TestConfig_RequestTimeout(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    time.Duration
	}{
		{"Configured", 30, 30 * time.Second},
		{"Zero", 0, 2 * time.Minute},
		{"Negative", -5, 2 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{RequestTimeoutSeconds: tt.seconds}
			assert.Equal(t, tt.want, c.RequestTimeout())
		})
	}
}
