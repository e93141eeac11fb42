package app

import (
	"github.com/tony-kipkemboi/granola-extractor/config"
	"github.com/tony-kipkemboi/granola-extractor/internal/domain/meeting/usecases"
	"github.com/tony-kipkemboi/granola-extractor/internal/granola"
)

type App struct {
	Extract *usecases.Extract
	Export  *usecases.Export
}

func New(cfg *config.Config) *App {
	extract := &usecases.Extract{
		Loader: granola.NewLoader(cfg.CachePath),
	}

	return &App{
		Extract: extract,
		Export:  &usecases.Export{},
	}
}
