package cmd

import (
	"context"
	"fmt"

	"lb-status/core/config"
	"lb-status/core/database"
	"lb-status/core/inventory"
	"lb-status/core/logger"
	"lb-status/core/storage"
	"lb-status/feature/archive"
	"lb-status/feature/history"
	"lb-status/feature/report"

	"go.uber.org/zap"
)

// app bundles what every command needs.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	devices inventory.Inventory
	service *report.Service
	archive *archive.Service
	history *history.Repository
}

// bootstrap loads configuration and wires the report service. Archive and
// history are optional: when their backend is unreachable a warning is
// logged and the run continues without them.
func bootstrap(ctx context.Context, override func(*config.Config)) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if override != nil {
		override(cfg)
	}
	if _, err := cfg.Report.Extensions(); err != nil {
		return nil, err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	devices, err := inventory.Resolve(cfg.Gateway.Inventory, cfg.Gateway.Host, l)
	if err != nil {
		return nil, err
	}
	l.Info("Inventory loaded", zap.Int("devices", len(devices)))

	a := &app{cfg: cfg, log: l, devices: devices}
	var opts []report.Option

	if cfg.Report.Archive {
		if svc, err := newArchive(ctx, cfg.Storage, l); err != nil {
			l.Warn("Report archive disabled", zap.Error(err))
		} else {
			a.archive = svc
			opts = append(opts, report.WithArchiver(svc))
		}
	}

	if cfg.Report.History {
		if repo, err := newHistory(cfg.Database); err != nil {
			l.Warn("Run history disabled", zap.Error(err))
		} else {
			a.history = repo
			opts = append(opts, report.WithRecorder(repo))
		}
	}

	a.service = report.NewService(cfg.Report, cfg.Gateway, devices, l, opts...)
	return a, nil
}

func newArchive(ctx context.Context, cfg storage.Config, l *zap.Logger) (*archive.Service, error) {
	client, err := storage.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	svc := archive.NewService(client, cfg.Bucket, cfg.Prefix, l)
	if _, err := svc.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func newHistory(cfg database.Config) (*history.Repository, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	repo := history.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate history tables: %w", err)
	}
	return repo, nil
}

// selectDevices narrows the inventory to one device when name is set.
func (a *app) selectDevices(name string) (inventory.Inventory, error) {
	if name == "" {
		return a.devices, nil
	}
	d, err := a.devices.Find(name)
	if err != nil {
		return nil, err
	}
	return inventory.Inventory{d}, nil
}
