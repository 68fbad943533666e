package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lb-status/core/icontrol"
	"lb-status/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, cfg Config, gateways map[string]*fakeGateway, opts ...Option) *Service {
	t.Helper()
	if cfg.OutputDir == "" {
		cfg.OutputDir = t.TempDir()
	}
	opts = append([]Option{WithDialer(dialer(gateways)), WithClock(fixedClock)}, opts...)
	return NewService(cfg, icontrol.Config{}, testDevices(), zap.NewNop(), opts...)
}

func TestService_Run(t *testing.T) {
	gw := &fakeGateway{}
	svc := newTestService(t, Config{}, map[string]*fakeGateway{"10.0.0.10": gw})

	result, err := svc.Run(context.Background(), testDevices()[0])
	require.NoError(t, err)
	assert.Equal(t, 1, gw.logins)

	require.Len(t, result.Rows, 2)
	for _, r := range result.Rows {
		assert.Equal(t, "lb01", r.Device)
		assert.Equal(t, "DC1", r.DataCenter)
		assert.Equal(t, "web", r.Tier)
	}
	assert.Equal(t, "10.1.0.1", result.Rows[0].NodeName)
	assert.Equal(t, reconcile.StatusCounts{"available": 1, "offline": 1}, result.Summary.Virtual)
}

func TestService_RunErrors(t *testing.T) {
	t.Run("Login", func(t *testing.T) {
		gw := &fakeGateway{loginErr: icontrol.ErrNoToken}
		svc := newTestService(t, Config{}, map[string]*fakeGateway{"10.0.0.10": gw})

		_, err := svc.Run(context.Background(), testDevices()[0])
		assert.ErrorIs(t, err, icontrol.ErrNoToken)
	})

	t.Run("Collection", func(t *testing.T) {
		gw := &fakeGateway{poolsErr: errUnreachable}
		svc := newTestService(t, Config{}, map[string]*fakeGateway{"10.0.0.10": gw})

		_, err := svc.Run(context.Background(), testDevices()[0])
		var fetchErr *reconcile.CollectionFetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, reconcile.ClassPool, fetchErr.Class)
		assert.Equal(t, reconcile.CollectionListing, fetchErr.Collection)
	})
}

func TestService_Generate(t *testing.T) {
	dir := t.TempDir()
	archiver := new(mockArchiver)
	archiver.On("Upload", mock.Anything, mock.Anything).Return("reports/2025-05-23/x", nil)
	recorder := new(mockRecorder)
	recorder.On("Record", mock.Anything, "lb01", fixedClock(), mock.Anything).Return(nil)

	// lb02 is unreachable
	svc := newTestService(t, Config{OutputDir: dir, Format: FormatBoth, Delimiter: ";"},
		map[string]*fakeGateway{"10.0.0.10": {}},
		WithArchiver(archiver), WithRecorder(recorder))

	paths, err := svc.Generate(context.Background(), testDevices())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lb02")
	assert.ErrorIs(t, err, errUnreachable)

	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "10.0.0.10_20250523_140309_lb_report.xlsx"), paths[0])
	assert.Equal(t, filepath.Join(dir, "10.0.0.10_20250523_140309_lb_report.csv"), paths[1])
	for _, p := range paths {
		_, statErr := os.Stat(p)
		assert.NoError(t, statErr)
	}

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "lb01;DC1;web;vs_web;"))

	archiver.AssertNumberOfCalls(t, "Upload", 2)
	recorder.AssertExpectations(t)
}

func TestService_ArchiveFailureIsNotFatal(t *testing.T) {
	archiver := new(mockArchiver)
	archiver.On("Upload", mock.Anything, mock.Anything).Return("", errors.New("bucket gone"))

	svc := newTestService(t, Config{Format: FormatCSV}, map[string]*fakeGateway{"10.0.0.10": {}}, WithArchiver(archiver))

	paths, err := svc.Generate(context.Background(), testDevices()[:1])
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}

func TestService_WriteInvalidFormat(t *testing.T) {
	svc := newTestService(t, Config{Format: "pdf"}, map[string]*fakeGateway{"10.0.0.10": {}})

	_, err := svc.Generate(context.Background(), testDevices()[:1])
	assert.Error(t, err)
}

func TestService_Summarize(t *testing.T) {
	svc := newTestService(t, Config{}, map[string]*fakeGateway{"10.0.0.10": {}})

	rows, err := svc.Summarize(context.Background(), testDevices()[0])
	require.NoError(t, err)
	require.Len(t, rows, 3)

	virtual := rows[0].Tally
	assert.Equal(t, reconcile.ClassVirtual, virtual.Class)
	assert.Equal(t, 2, virtual.Total)
	assert.Equal(t, 1, virtual.Count("offline"))
	assert.Equal(t, 1, virtual.Disabled("offline"))
	assert.Equal(t, "DC1", rows[0].DataCenter)
	assert.Equal(t, reconcile.ClassNode, rows[2].Tally.Class)
}

func TestService_SummarizeStatsFailure(t *testing.T) {
	svc := newTestService(t, Config{}, map[string]*fakeGateway{"10.0.0.10": {statsErr: errUnreachable}})

	_, err := svc.Summarize(context.Background(), testDevices()[0])
	assert.ErrorIs(t, err, reconcile.ErrCollectionFetch)
}

func TestService_WriteSummary(t *testing.T) {
	dir := t.TempDir()
	svc := newTestService(t, Config{OutputDir: dir, Delimiter: ","}, map[string]*fakeGateway{"10.0.0.10": {}, "10.0.0.11": {}})

	path, err := svc.WriteSummary(context.Background(), testDevices())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lb_status_summary_20250523_140309.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "DC1,lb01,Virtual Servers,1 (0 Disabled),0,1 (1 Disabled),0 (0 Disabled),2", lines[1])
	assert.True(t, strings.HasPrefix(lines[4], "DC2,lb02,"))
}

func TestService_Device(t *testing.T) {
	svc := newTestService(t, Config{}, nil)

	d, err := svc.Device("10.0.0.11")
	require.NoError(t, err)
	assert.Equal(t, "lb02", d.Name)

	_, err = svc.Device("lb09")
	assert.Error(t, err)
}
