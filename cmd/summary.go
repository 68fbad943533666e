package cmd

import (
	"lb-status/core/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	summaryOutputDir string
	summaryDevice    string
)

// summaryCmd writes the statistics-only summary of every device.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Write availability counts of every load balancer",
	Long: `Counts the virtual server, pool and node statistics of every device by
availability state, with the number of disabled objects, and writes a
single CSV covering all devices.`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryOutputDir, "output-dir", "", "Output directory (default from REPORT_OUTPUT_DIR)")
	summaryCmd.Flags().StringVar(&summaryDevice, "device", "", "Only summarize this device (name or management address)")

	RootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := bootstrap(ctx, func(cfg *config.Config) {
		if summaryOutputDir != "" {
			cfg.Report.OutputDir = summaryOutputDir
		}
	})
	if err != nil {
		return err
	}
	defer a.log.Sync()

	devices, err := a.selectDevices(summaryDevice)
	if err != nil {
		return err
	}

	path, err := a.service.WriteSummary(ctx, devices)
	if path != "" {
		a.log.Info("Summary run finished", zap.Int("devices", len(devices)), zap.String("file", path))
	}
	return err
}
