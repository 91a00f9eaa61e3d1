package main

import (
	"flag"
	"fmt"
	"os"

	"tasklist/internal/config"
	"tasklist/internal/logging"
	"tasklist/internal/storage"
	"tasklist/internal/task"
	"tasklist/internal/ui"
)

type kvStore interface {
	task.Store
	Close() error
}

func main() {
	configPath := flag.String("config", config.ResolveConfigPath(), "path to config.toml")
	memory := flag.Bool("memory", false, "keep tasks in memory only")
	flag.Parse()

	cfg, err := config.LoadOrCreate(*configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := logging.New(logging.Options{
		Path:            cfg.LogPath,
		Level:           cfg.LogLevel,
		Format:          cfg.LogFormat,
		ReportTimestamp: true,
		Prefix:          "tasklist",
	})
	if err != nil {
		fmt.Printf("failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	var store kvStore
	if *memory {
		store = storage.NewMemory()
	} else {
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			fmt.Printf("failed to open database: %v\n", err)
			os.Exit(1)
		}
	}
	defer store.Close()

	surface := ui.NewSurface()
	list := task.NewList(
		task.WithRenderer(surface),
		task.WithStore(store, cfg.StorageKey),
		task.WithLogger(logger),
		task.WithSelectionHook(surface.SelectionChanged),
		task.WithErrorHook(surface.PersistFailed),
	)
	src := task.Restore(list, cfg.SeedSnapshots())
	logger.Info("started", "config", *configPath, "db", cfg.DBPath, "source", src)

	if err := ui.Run(list, surface, cfg, logger); err != nil {
		logger.Error("program failed", "err", err)
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
