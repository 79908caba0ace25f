package main

import (
	"fmt"
	"os"

	"github.com/yt2jellyfin/yt2jellyfin/internal/config"
	"github.com/yt2jellyfin/yt2jellyfin/internal/tui"
)

func main() {
	settings, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
