package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"memo-whisper/internal/api/server"
	"memo-whisper/internal/app/config"
	"memo-whisper/internal/app/logger"
	"memo-whisper/internal/app/repository/sqlite"
	"memo-whisper/internal/app/retention"
)

var configPath string
var verbose bool

const retentionInterval = 24 * time.Hour

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration file")
	Cmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "verbose output")

	Cmd.MarkFlagRequired("config")
}

// Cmd represents the long-running service: the viewer interface plus the
// daily retention sweep.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the viewer server with a background retention loop",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		log := logger.MustNewLogger(verbose)
		defer log.Sync()

		db, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			log.Error("ledger unavailable", zap.Error(err))
			os.Exit(1)
		}
		defer db.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cleaner := retention.NewCleaner(db, log)
		go retentionLoop(ctx, cleaner, cfg.RetentionDays, log)

		srv := server.New(cfg, db, log)
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		if err := srv.Start(); err != nil {
			log.Error("viewer server failed", zap.Error(err))
			os.Exit(1)
		}
	},
}

// retentionLoop sweeps once at startup and then daily. No active mount is
// passed here; the existence gate alone applies, matching the unattended
// service mode. Sweep failures are logged and the loop keeps going.
func retentionLoop(ctx context.Context, cleaner *retention.Cleaner, retentionDays int, log *zap.Logger) {
	ticker := time.NewTicker(retentionInterval)
	defer ticker.Stop()

	for {
		report, err := cleaner.Sweep("", retentionDays)
		if err != nil {
			log.Warn("retention sweep failed", zap.Error(err))
		} else {
			log.Info("retention sweep finished",
				zap.Int("examined", report.Examined),
				zap.Int("eligible", report.Eligible),
				zap.Int("deleted", report.Deleted))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
