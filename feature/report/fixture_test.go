package report

import (
	"context"
	"errors"
	"time"

	"lb-status/core/icontrol/models"
	"lb-status/core/inventory"
	"lb-status/core/reconcile"

	"github.com/stretchr/testify/mock"
)

func value(v float64) *float64 { return &v }

func stats(entries map[string][2]string) *models.Stats {
	out := &models.Stats{Entries: map[string]models.StatsEntry{}}
	for name, st := range entries {
		var e models.StatsEntry
		e.NestedStats.Entries = map[string]models.StatValue{
			models.StatName:              {Description: name},
			models.StatAvailabilityState: {Description: st[0]},
			models.StatEnabledState:      {Description: st[1]},
			models.StatStatusReason:      {Description: "reason"},
			models.StatMemberCount:       {Value: value(1)},
		}
		out.Entries["https://localhost/stats"+name] = e
	}
	return out
}

// fakeGateway serves one small fixed configuration.
type fakeGateway struct {
	loginErr error
	poolsErr error
	statsErr error
	logins   int
}

func (g *fakeGateway) Login(ctx context.Context) error {
	g.logins++
	return g.loginErr
}

func (g *fakeGateway) ListVirtuals(ctx context.Context) (*models.VirtualList, error) {
	return &models.VirtualList{Items: []models.Virtual{
		{Name: "vs_web", FullPath: "/Common/vs_web", Destination: "/Common/10.0.0.5:443", Pool: "/Common/web_pool"},
		{Name: "vs_admin", FullPath: "/Common/vs_admin", Destination: "/Common/10.0.0.6:8443"},
	}}, nil
}

func (g *fakeGateway) VirtualStats(ctx context.Context) (*models.Stats, error) {
	if g.statsErr != nil {
		return nil, g.statsErr
	}
	return stats(map[string][2]string{
		"/Common/vs_web":   {"available", "enabled"},
		"/Common/vs_admin": {"offline", "disabled"},
	}), nil
}

func (g *fakeGateway) ListPools(ctx context.Context) (*models.PoolList, error) {
	if g.poolsErr != nil {
		return nil, g.poolsErr
	}
	return &models.PoolList{Items: []models.Pool{{Name: "web_pool", FullPath: "/Common/web_pool"}}}, nil
}

func (g *fakeGateway) PoolStats(ctx context.Context) (*models.Stats, error) {
	return stats(map[string][2]string{"/Common/web_pool": {"available", "enabled"}}), nil
}

func (g *fakeGateway) ListPoolMembers(ctx context.Context, pool models.Pool) (*models.MemberList, error) {
	return &models.MemberList{Items: []models.Member{
		{Name: "10.1.0.1:80", Address: "10.1.0.1", Port: float64(80), State: "up", Session: "monitor-enabled"},
	}}, nil
}

func (g *fakeGateway) ListNodes(ctx context.Context) (*models.NodeList, error) {
	return &models.NodeList{Items: []models.Node{{Name: "10.1.0.1", FullPath: "/Common/10.1.0.1", Address: "10.1.0.1"}}}, nil
}

func (g *fakeGateway) NodeStats(ctx context.Context) (*models.Stats, error) {
	return stats(map[string][2]string{"/Common/10.1.0.1": {"available", "enabled"}}), nil
}

var errUnreachable = errors.New("dial tcp: connection refused")

func testDevices() inventory.Inventory {
	return inventory.Inventory{
		{Name: "lb01", MgmtIP: "10.0.0.10", DataCenter: "DC1", Tier: "web"},
		{Name: "lb02", MgmtIP: "10.0.0.11", DataCenter: "DC2", Tier: "app"},
	}
}

// dialer returns a Dialer serving gateways by host; unknown hosts fail.
func dialer(gateways map[string]*fakeGateway) Dialer {
	return func(host string) (Gateway, error) {
		gw, ok := gateways[host]
		if !ok {
			return nil, errUnreachable
		}
		return gw, nil
	}
}

func fixedClock() time.Time {
	return time.Date(2025, 5, 23, 14, 3, 9, 0, time.UTC)
}

type mockArchiver struct{ mock.Mock }

func (m *mockArchiver) Upload(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

type mockRecorder struct{ mock.Mock }

func (m *mockRecorder) Record(ctx context.Context, device string, started time.Time, result *reconcile.Result) error {
	args := m.Called(ctx, device, started, result)
	return args.Error(0)
}
