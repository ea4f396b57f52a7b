package main

import (
	"os"

	"github.com/osse101/PoE2Craft_Go/internal/config"
	"github.com/osse101/PoE2Craft_Go/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		PrintError("%v", err)
		os.Exit(1)
	}
	// Keep stdout for command output
	logger.InitLoggerWithWriter(cfg.LoggerConfig(), os.Stderr)

	app := newApp(cfg)
	registry := NewRegistry()
	registry.Register(&ListCommand{app: app})
	registry.Register(&ApplyCommand{app: app})
	registry.Register(&SimulateCommand{app: app})
	registry.Register(&ModsCommand{app: app})
	registry.Register(&MigrateCommand{app: app})
	registry.Register(&HistoryCommand{app: app})

	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp()
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		os.Exit(1)
	}
}
