package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/gobeam/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the beam design operations over HTTP",
	Long: `Start the HTTP API. Endpoints are mounted under /api/v1:

  POST /api/v1/design     Design a beam (JSON in, JSON out)
  GET  /api/v1/schematic  Beam schematic (PNG)
  GET  /api/v1/envelope   Stacked shear and moment diagrams (PNG)
  POST /api/v1/report     PDF design report
  POST /api/v1/batch      Design a workbook of beams (xlsx in, xlsx out)
  GET  /healthz           Liveness probe

Settings come from GOBEAM_* environment variables (a .env file is read
when present); --addr overrides the listen address.

Examples:
  gobeam serve
  gobeam serve --addr :9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides GOBEAM_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	cfg := server.ConfigFromEnv()
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, logger).Run(ctx)
}
