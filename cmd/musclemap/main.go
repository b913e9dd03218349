// Package main provides the entry point for the MuscleMap client state
// layer.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/musclemap/musclemap-client/internal/config"
	"github.com/musclemap/musclemap-client/internal/di"
	"github.com/musclemap/musclemap-client/internal/di/providers"
	"github.com/musclemap/musclemap-client/internal/logger"
)

func main() {
	var flags config.Flags
	flag.StringVar(&flags.Environment, "env", "", "environment (development or production)")
	flag.StringVar(&flags.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flag.StringVar(&flags.DataPath, "data-path", "", "directory for the partition database")
	flag.StringVar(&flags.EnvFile, "env-file", "", "path to a .env file")
	flag.Parse()

	// Create DI container
	injector := di.NewContainer(flags)

	// Bootstrap all stores
	if err := di.Bootstrap(injector); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap: %v\n", err)
		os.Exit(1)
	}

	// Get logger for shutdown messages
	log := do.MustInvoke[*logger.Logger](injector)

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gracefully...")

	// Shutdown all services in reverse order
	if err := injector.Shutdown(); err != nil {
		log.Error("Shutdown error", "error", err)
	}

	// The partition database uses a wrapper type, close it explicitly.
	if persistHandle, err := do.Invoke[*providers.PersistHandle](injector); err == nil {
		log.Info("Closing partition database...")
		if err := persistHandle.Shutdown(); err != nil {
			log.Error("Failed to close partition database", "error", err)
		} else {
			log.Info("Partition database closed")
		}
	}

	log.Info("Goodbye")
}
