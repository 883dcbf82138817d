package export

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"memo-whisper/internal/app/config"
	appexport "memo-whisper/internal/app/export"
	"memo-whisper/internal/app/logger"
	"memo-whisper/internal/app/repository/sqlite"
)

var configPath string
var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration file")
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")

	Cmd.MarkFlagRequired("config")
	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export all active recordings to excel",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		log := logger.MustNewLogger(false)
		defer log.Sync()

		db, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			log.Error("ledger unavailable", zap.Error(err))
			os.Exit(1)
		}
		defer db.Close()

		recordings, err := db.ListActive()
		if err != nil {
			log.Error("listing recordings failed", zap.Error(err))
			os.Exit(1)
		}

		if err := appexport.ToExcel(recordings, outputFilePath); err != nil {
			log.Error("excel export failed", zap.Error(err))
			os.Exit(1)
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
	},
}
