package ingest

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"memo-whisper/internal/app"
	"memo-whisper/internal/app/config"
	"memo-whisper/internal/app/logger"
	"memo-whisper/internal/app/progress"
)

var configPath string
var mountPath string
var verbose bool

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration file")
	Cmd.Flags().StringVarP(&mountPath, "mount", "m", "", "mount path of the attached recorder")
	Cmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "verbose output")

	Cmd.MarkFlagRequired("config")
	Cmd.MarkFlagRequired("mount")
}

// Cmd represents the one-shot import command, typically invoked by a
// device-attach event handler with the mount path as argument.
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Run the ingestion pipeline once against a mount and exit",
	Long: `Run the ingestion pipeline once against a mount and exit.

- Discover .wav files under the configured subdirectory of the mount
- Skip content already present in the ledger
- Trim silence, transcribe, segment sentences and persist new recordings

The exit code reflects only run-fatal conditions (ledger unavailable);
individual bad recordings are reported in the logs and the summary.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		log := logger.MustNewLogger(verbose)
		defer log.Sync()

		imp, err := app.InitializeImporter(cfg, log)
		if err != nil {
			log.Error("importer initialization failed", zap.Error(err))
			os.Exit(1)
		}
		defer imp.Close()

		imp.SetProgress(progress.Config{Enabled: true})

		report, err := imp.Run(context.Background(), mountPath)
		if err != nil {
			log.Error("import run failed", zap.Error(err))
			os.Exit(1)
		}

		fmt.Printf("discovered %d, imported %d, skipped %d, failed %d\n",
			report.Discovered, report.Imported, report.Skipped, report.Failed)
	},
}
