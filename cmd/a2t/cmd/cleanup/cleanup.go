package cleanup

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"memo-whisper/internal/app/config"
	"memo-whisper/internal/app/logger"
	"memo-whisper/internal/app/repository/sqlite"
	"memo-whisper/internal/app/retention"
)

var configPath string
var mountPath string
var verbose bool

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration file")
	Cmd.Flags().StringVarP(&mountPath, "mount", "m", "", "active mount path; deletions are confined to it when set")
	Cmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "verbose output")

	Cmd.MarkFlagRequired("config")
}

// Cmd represents the cleanup command: a one-shot retention sweep.
var Cmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete aged source files whose content is already imported",
	Long: `Delete aged source files whose content is already imported.

Only original source files are removed, and only when they still exist
and (when --mount is given) lie within the active mount. Trimmed copies
and ledger rows are never touched.`,
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

		report, err := retention.NewCleaner(db, log).Sweep(mountPath, cfg.RetentionDays)
		if err != nil {
			log.Error("retention sweep failed", zap.Error(err))
			os.Exit(1)
		}

		fmt.Printf("examined %d, eligible %d, deleted %d\n",
			report.Examined, report.Eligible, report.Deleted)
	},
}
