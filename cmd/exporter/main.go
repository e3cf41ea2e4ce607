package main

import (
	"context"
	"fmt"

	"github.com/KissOfTheVoid/parse-joinrpg/internal/exporter"
	"github.com/KissOfTheVoid/parse-joinrpg/pkg/api"
	"github.com/KissOfTheVoid/parse-joinrpg/pkg/config"
	"github.com/KissOfTheVoid/parse-joinrpg/pkg/logger"
	"github.com/KissOfTheVoid/parse-joinrpg/pkg/writer"
)

// The exporter takes no flags: it reads a fixed configuration file and writes
// the output path named there. Failures are reported through the log only; the
// process always exits normally.
func main() {
	// 1. Bootstrap logger, replaced once the configured level is known
	l, err := logger.New(logger.Config{Level: "info", ServiceName: "charexport"})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		return
	}
	defer l.Sync()

	// 2. Load config
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		l.Error("failed to load configuration", err)
		return
	}

	l, err = logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		return
	}
	defer l.Sync()

	// 3. Wire components
	client := api.NewClient(api.Config{
		AuthURL:             cfg.AuthURL,
		LoginData:           cfg.LoginData,
		CharactersURL:       cfg.CharactersURL,
		CharacterDetailsURL: cfg.CharacterDetailsURL,
		ProjectID:           cfg.ProjectID,
	}, l)
	csvWriter := writer.NewCSVWriter(cfg.OutputFile, l)

	// 4. Run the export
	svc := exporter.NewService(l, client, csvWriter)
	if err := svc.Run(context.Background()); err != nil {
		l.Error("export aborted", err)
	}
}
