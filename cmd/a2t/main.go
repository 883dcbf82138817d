package main

import (
	"fmt"
	"os"

	"memo-whisper/cmd/a2t/cmd"
	"memo-whisper/internal/app/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	cmd.Execute()
}
