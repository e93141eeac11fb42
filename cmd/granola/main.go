package main

import (
	"fmt"
	"os"

	"github.com/tony-kipkemboi/granola-extractor/config"
	"github.com/tony-kipkemboi/granola-extractor/internal/app"
	"github.com/tony-kipkemboi/granola-extractor/internal/cli"
	"github.com/tony-kipkemboi/granola-extractor/internal/output"
)

func main() {
	if err := run(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	deps := &cli.Dependencies{
		App:    app.New(cfg),
		Config: cfg,
	}

	return cli.NewRootCmd(deps).Execute()
}
