package main

import (
	"flag"
	"fmt"
	stlog "log"
	"os"

	"github.com/bethropolis/quill/internal/app"
	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	flags := config.NewFlags(flag.CommandLine)
	files, err := flags.Parse(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}

	// --- Configuration ---
	cfg, undecoded, err := config.Load(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Logger Initialization ---
	logOutput, closeLog, err := logger.Open(cfg.Logger)
	if err != nil {
		stlog.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()
	logger.Init(cfg.Logger, logOutput)

	logger.Infof("Starting %s %s", config.AppName, version)
	if len(undecoded) > 0 {
		logger.Warnf("Config file: unrecognized keys: %v", undecoded)
	}
	logger.Debugf("Files: %v", files)

	// --- Create and Run App ---
	quillApp, err := app.NewApp(cfg, files)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		closeLog()
		os.Exit(1)
	}

	if err := quillApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		closeLog()
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
