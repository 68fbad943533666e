package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lb-status/core/icontrol"
	"lb-status/core/icontrol/models"
	"lb-status/core/inventory"
	"lb-status/core/reconcile"
	"lb-status/feature/report/export"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Gateway is a logged-in connection to one load balancer.
type Gateway interface {
	reconcile.Source
	Login(ctx context.Context) error
}

// Dialer creates a Gateway for a host.
type Dialer func(host string) (Gateway, error)

// Archiver stores a produced report file and returns its object name.
type Archiver interface {
	Upload(ctx context.Context, path string) (string, error)
}

// Recorder persists the outcome of a run.
type Recorder interface {
	Record(ctx context.Context, device string, started time.Time, result *reconcile.Result) error
}

// Service produces reports for the devices of an inventory.
type Service struct {
	cfg     Config
	devices inventory.Inventory
	dial    Dialer
	logger  *zap.Logger

	archiver Archiver
	recorder Recorder
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithArchiver uploads every written file.
func WithArchiver(a Archiver) Option {
	return func(s *Service) { s.archiver = a }
}

// WithRecorder records every successful run.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithDialer replaces the gateway factory.
func WithDialer(d Dialer) Option {
	return func(s *Service) { s.dial = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a report service. Gateways are dialed with gateway
// unless WithDialer is given.
func NewService(cfg Config, gateway icontrol.Config, devices inventory.Inventory, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		cfg:     cfg,
		devices: devices,
		logger:  logger,
		now:     time.Now,
		dial: func(host string) (Gateway, error) {
			client, err := icontrol.NewClient(gateway, host)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Devices returns the inventory.
func (s *Service) Devices() inventory.Inventory {
	return s.devices
}

// Device finds a device by name or management address.
func (s *Service) Device(name string) (inventory.Device, error) {
	return s.devices.Find(name)
}

func (s *Service) connect(ctx context.Context, device inventory.Device) (Gateway, error) {
	gw, err := s.dial(device.Host())
	if err != nil {
		return nil, err
	}
	if err := gw.Login(ctx); err != nil {
		return nil, err
	}
	return gw, nil
}

// Run reconciles one device. Rows are tagged with the device labels.
func (s *Service) Run(ctx context.Context, device inventory.Device) (*reconcile.Result, error) {
	started := s.now()
	l := s.logger.With(zap.String("device", device.Label()))

	gw, err := s.connect(ctx, device)
	if err != nil {
		return nil, err
	}

	result, err := reconcile.ReconcileAll(ctx, &reconcile.Spec{
		Source: gw,
		Logger: s.logger,
		Device: device.Label(),
	})
	if err != nil {
		return nil, err
	}

	for i := range result.Rows {
		result.Rows[i].Device = device.Label()
		result.Rows[i].DataCenter = device.DataCenter
		result.Rows[i].Tier = device.Tier
	}

	l.Info("Reconciliation finished",
		zap.Int("rows", len(result.Rows)),
		zap.Int("virtuals", len(result.Virtuals)),
		zap.Int("pools", len(result.Pools)),
		zap.Int("nodes", len(result.Nodes)),
		zap.Any("no_stats", result.Diagnostics.NoStats),
		zap.Int("unresolved_members", result.Diagnostics.UnresolvedMembers),
	)

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, device.Label(), started, result); err != nil {
			l.Warn("Failed to record run history", zap.Error(err))
		}
	}
	return result, nil
}

// Write renders result into the configured formats under the output
// directory and returns the written paths.
func (s *Service) Write(ctx context.Context, device inventory.Device, result *reconcile.Result) ([]string, error) {
	exts, err := s.cfg.Extensions()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.outputDir(), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	at := s.now()
	var paths []string
	for _, ext := range exts {
		path := filepath.Join(s.outputDir(), export.ReportFileName(device.Host(), at, ext))
		switch ext {
		case FormatXLSX:
			title := fmt.Sprintf("%s status report %s", device.Label(), at.Format(time.DateTime))
			err = export.WriteWorkbook(path, title, result.Rows, result.Summary)
		case FormatCSV:
			err = writeFile(path, func(f *os.File) error {
				return export.WriteCSV(f, result.Rows, export.Delimiter(s.cfg.Delimiter))
			})
		}
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
		s.logger.Info("Report written", zap.String("device", device.Label()), zap.String("path", path))
		s.archive(ctx, path)
	}
	return paths, nil
}

// Generate runs and writes the report of every device. A device that fails
// does not stop the others; all failures are returned joined.
func (s *Service) Generate(ctx context.Context, devices inventory.Inventory) ([]string, error) {
	var (
		paths []string
		errs  []error
	)
	for _, device := range devices {
		result, err := s.Run(ctx, device)
		if err != nil {
			s.logger.Error("Report failed", zap.String("device", device.Label()), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", device.Label(), err))
			continue
		}
		written, err := s.Write(ctx, device, result)
		paths = append(paths, written...)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", device.Label(), err))
		}
	}
	return paths, errors.Join(errs...)
}

// Summarize tallies the statistics of one device without joining them.
func (s *Service) Summarize(ctx context.Context, device inventory.Device) ([]export.TallyRow, error) {
	gw, err := s.connect(ctx, device)
	if err != nil {
		return nil, err
	}

	fetchers := map[reconcile.EntityClass]func(context.Context) (*models.Stats, error){
		reconcile.ClassVirtual: gw.VirtualStats,
		reconcile.ClassPool:    gw.PoolStats,
		reconcile.ClassNode:    gw.NodeStats,
	}
	payloads := make([]*models.Stats, len(reconcile.Classes))

	g, gctx := errgroup.WithContext(ctx)
	for i, class := range reconcile.Classes {
		fetch := fetchers[class]
		g.Go(func() error {
			stats, err := fetch(gctx)
			if err != nil {
				return &reconcile.CollectionFetchError{Class: class, Collection: reconcile.CollectionStatistics, Err: err}
			}
			payloads[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := make([]export.TallyRow, 0, len(reconcile.Classes))
	for i, class := range reconcile.Classes {
		idx, _ := reconcile.BuildStatsIndex(payloads[i], class, s.logger)
		rows = append(rows, export.TallyRow{
			DataCenter: device.DataCenter,
			Device:     device.Label(),
			Tally:      reconcile.TallyStats(class, idx),
		})
	}
	return rows, nil
}

// WriteSummary tallies every device into one CSV file. Failed devices are
// left out and reported in the joined error.
func (s *Service) WriteSummary(ctx context.Context, devices inventory.Inventory) (string, error) {
	var (
		rows []export.TallyRow
		errs []error
	)
	for _, device := range devices {
		tallies, err := s.Summarize(ctx, device)
		if err != nil {
			s.logger.Error("Summary failed", zap.String("device", device.Label()), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", device.Label(), err))
			continue
		}
		rows = append(rows, tallies...)
	}

	if err := os.MkdirAll(s.outputDir(), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(s.outputDir(), export.SummaryFileName(s.now()))
	if err := writeFile(path, func(f *os.File) error {
		return export.WriteTallyCSV(f, rows, export.Delimiter(s.cfg.Delimiter))
	}); err != nil {
		return "", err
	}
	s.logger.Info("Summary written", zap.String("path", path), zap.Int("lines", len(rows)))
	s.archive(ctx, path)
	return path, errors.Join(errs...)
}

func (s *Service) archive(ctx context.Context, path string) {
	if s.archiver == nil {
		return
	}
	object, err := s.archiver.Upload(ctx, path)
	if err != nil {
		s.logger.Warn("Failed to archive report", zap.String("path", path), zap.Error(err))
		return
	}
	s.logger.Info("Report archived", zap.String("object", object))
}

func (s *Service) outputDir() string {
	if s.cfg.OutputDir == "" {
		return "."
	}
	return s.cfg.OutputDir
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
