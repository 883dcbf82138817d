package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"memo-whisper/cmd/a2t/cmd/cleanup"
	"memo-whisper/cmd/a2t/cmd/export"
	"memo-whisper/cmd/a2t/cmd/ingest"
	"memo-whisper/cmd/a2t/cmd/serve"
	"memo-whisper/cmd/a2t/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "a2t",
	Short: "Import, transcribe and serve field-recorder audio",
	Long: `Import, transcribe and serve field-recorder audio.

- Scan a mounted recorder for new recordings, dedup by content hash
- Trim silence with ffmpeg and transcribe with whisper.cpp
- Persist one ledger row per recording and serve a playback viewer
- Periodically reclaim aged source files from the recorder`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(ingest.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(cleanup.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
