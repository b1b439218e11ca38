package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/osse101/FactoryPlanner_Go/internal/catalog"
	"github.com/osse101/FactoryPlanner_Go/internal/logger"
)

// overridden during build with ldflags
var version = "dev"

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      appName,
		Usage:     "Plan factory production lines from the command line",
		Version:   version,
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagCatalogDir,
				Usage:   "Directory with items.json, machines.json and recipes.json (default: built-in catalog)",
				Sources: cli.EnvVars("CATALOG_DIR"),
			},
			&cli.StringFlag{
				Name:    flagLogLevel,
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			cfg := logger.NewConfig(cmd.String(flagLogLevel), logger.LogFormatText, appName, version, logger.EnvironmentDev, false)
			logger.InitLoggerWithWriter(cfg, cmd.Root().ErrWriter)
			return ctx, nil
		},
		Commands: []*cli.Command{
			catalogCmd(),
			summarizeCmd(),
			powerCmd(),
		},
	}
}

func loadCatalog(cmd *cli.Command) (*catalog.Catalog, error) {
	dir := cmd.String(flagCatalogDir)
	if dir == "" {
		return catalog.LoadDefault()
	}
	cat, err := catalog.NewLoader().Load(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %q: %w", dir, err)
	}
	return cat, nil
}
