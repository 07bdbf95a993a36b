package main

import (
	"log"
	"os"

	"refstudio/internal/app"
	"refstudio/internal/config"
	"refstudio/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	level := logger.ParseLevel(cfg.Log.Level)
	var appLogger *logger.ZerologAdapter
	if cfg.Log.JSON {
		appLogger = logger.NewZerolog(os.Stderr, level)
	} else {
		appLogger = logger.NewConsoleLogger(level)
	}

	application, err := app.NewApplication(app.NewFyneApp(cfg), cfg, appLogger)
	if err != nil {
		appLogger.Error("Main", err, nil)
		os.Exit(1)
	}

	application.Run()
}
