// Package main implements the database migration utility for the WhatsApp assistant.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/popeskul/whatsapp-assistant/internal/config"
	"github.com/popeskul/whatsapp-assistant/internal/infrastructure/migrate"
)

const defaultMigrateSteps = 1

func main() {
	var (
		configPath     string
		migrationsPath string
		steps          int
	)

	flag.StringVar(&configPath, "config", "config.yaml", "Path to config file")
	flag.StringVar(&migrationsPath, "path", "", "Path to migrations directory (overrides config)")
	flag.IntVar(&steps, "steps", defaultMigrateSteps, "Number of migrations to roll back with 'down'")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	args := flag.Args()
	if len(args) == 0 {
		logger.Fatal("Please specify a command: up, down, or version")
	}
	command := args[0]

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		databaseURL = cfg.Database.GetURL()
	}
	if migrationsPath == "" {
		migrationsPath = cfg.Database.MigrationsPath
	}

	runner := migrate.NewRunner(&migrate.Config{
		DatabaseURL:    databaseURL,
		MigrationsPath: migrationsPath,
	}, logger)

	switch command {
	case "up":
		if err := runner.Run(); err != nil {
			logger.Fatal("Failed to run migrations up", zap.Error(err))
		}

	case "down":
		if err := runner.Steps(-steps); err != nil {
			logger.Fatal("Failed to run migrations down", zap.Error(err))
		}
		printVersion(logger, runner)

	case "version":
		printVersion(logger, runner)

	default:
		logger.Fatal("Unknown command. Use 'up', 'down', or 'version'", zap.String("command", command))
	}
}

func printVersion(logger *zap.Logger, runner *migrate.Runner) {
	version, dirty, err := runner.Version()
	if err != nil {
		logger.Fatal("Failed to get version", zap.Error(err))
	}
	if dirty {
		fmt.Printf("Current version: %d (dirty)\n", version)
		return
	}
	fmt.Printf("Current version: %d\n", version)
}
