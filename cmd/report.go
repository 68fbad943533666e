package cmd

import (
	"lb-status/core/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reportFormat    string
	reportOutputDir string
	reportDevice    string
)

// reportCmd writes the full status report of every device.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the status report of every load balancer",
	Long: `Fetches virtual servers, pools, pool members and nodes with their statistics
from every device of the inventory and writes one report per device.

A device that cannot be reached or is missing a collection is skipped; the
command reports all failures at the end.

Examples:
  # Workbook per device in the current directory
  lb-status report

  # CSV and workbook for one device
  lb-status report --device lb01 --format both --output-dir ./out`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "", "Report format: xlsx, csv or both (default from REPORT_FORMAT)")
	reportCmd.Flags().StringVar(&reportOutputDir, "output-dir", "", "Output directory (default from REPORT_OUTPUT_DIR)")
	reportCmd.Flags().StringVar(&reportDevice, "device", "", "Only report this device (name or management address)")

	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := bootstrap(ctx, func(cfg *config.Config) {
		if reportFormat != "" {
			cfg.Report.Format = reportFormat
		}
		if reportOutputDir != "" {
			cfg.Report.OutputDir = reportOutputDir
		}
	})
	if err != nil {
		return err
	}
	defer a.log.Sync()

	devices, err := a.selectDevices(reportDevice)
	if err != nil {
		return err
	}

	paths, err := a.service.Generate(ctx, devices)
	a.log.Info("Report run finished", zap.Int("devices", len(devices)), zap.Strings("files", paths))
	return err
}
