package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Encodings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"Canonical", "/Common/vs_web", "/Common/vs_web"},
		{"Tilde", "~Common~vs_web", "/Common/vs_web"},
		{"Bare", "vs_web", "/Common/vs_web"},
		{"Relative", "Common/vs_web", "/Common/vs_web"},
		{"Composite URL", "https://localhost/mgmt/tm/ltm/virtual/~Common~vs_web/stats", "/Common/vs_web"},
		{"Composite URL with query", "https://localhost/mgmt/tm/ltm/pool/~Prod~web_pool/stats?ver=15.1.0", "/Prod/web_pool"},
		{"Composite URL bare name", "https://localhost/mgmt/tm/ltm/virtual/vs_web/stats", "/Common/vs_web"},
		{"Tilde with URL prefix", "virtual/~Common~vs_web", "/Common/vs_web"},
		{"Tilde with trailing segment", "~Common~vs_web/stats", "/Common/vs_web"},
		{"Folder path kept", "~Common~app.app~vs_web", "/Common/app.app/vs_web"},
		{"Trailing slash", "/Common/vs_web/", "/Common/vs_web"},
		{"Node address name", "~Common~10.0.0.1", "/Common/10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	raws := []string{
		"/Common/vs_web",
		"~Common~vs_web",
		"vs_web",
		"https://localhost/mgmt/tm/ltm/node/~Common~10.0.0.5/stats",
		"~Common~app.app~vs_web",
	}
	for _, raw := range raws {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once), raw)
	}
}

func TestResolve_PrefersExactMatch(t *testing.T) {
	known := map[string]bool{
		"~Common~vs_web": true,
		"/Common/vs_web": true,
	}
	has := func(k string) bool { return known[k] }

	key, ok := Resolve("~Common~vs_web", has)
	assert.True(t, ok)
	assert.Equal(t, "~Common~vs_web", key)
}

func TestResolve_FallsBackThroughStrategies(t *testing.T) {
	known := map[string]bool{"/Common/vs_web": true}
	has := func(k string) bool { return known[k] }

	for _, raw := range []string{"/Common/vs_web", "~Common~vs_web", "vs_web", "x/~Common~vs_web"} {
		key, ok := Resolve(raw, has)
		assert.True(t, ok, raw)
		assert.Equal(t, "/Common/vs_web", key, raw)
	}

	_, ok := Resolve("/Other/vs_web", has)
	assert.False(t, ok)

	_, ok = Resolve("", has)
	assert.False(t, ok)
}

func TestResolve_ShortTildeFallback(t *testing.T) {
	// A folder path only matches through the last-two-segments strategy.
	known := map[string]bool{"/app.app/vs_web": true}
	has := func(k string) bool { return known[k] }

	key, ok := Resolve("~Common~app.app~vs_web", has)
	assert.True(t, ok)
	assert.Equal(t, "/app.app/vs_web", key)
}

func TestCandidates_Order(t *testing.T) {
	assert.Equal(t, []string{"/Common/app.app/vs", "/app.app/vs"}, Candidates("~Common~app.app~vs"))
	assert.Equal(t, []string{"/Common/vs"}, Candidates("vs"))
	assert.Empty(t, Candidates(""))
}
