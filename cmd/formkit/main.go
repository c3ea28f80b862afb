package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

func main() {
	ctx := context.Background()

	// Extra arguments name .env files to load instead of ./.env.
	cfg := config.MustLoad[formkit.Config](config.WithEnvFiles(os.Args[1:]...))

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithContextExtractors(formkit.LogRequestID),
	}
	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			slog.Error("parse log level", logger.Error(err))
			os.Exit(1)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	fields := formkit.DefaultFields()
	if cfg.FormSchema != "" {
		var err error
		fields, err = formkit.LoadSchemaFile(cfg.FormSchema)
		if err != nil {
			log.ErrorContext(ctx, "load form schema", logger.Error(err), slog.String("path", cfg.FormSchema))
			os.Exit(1)
		}
	}

	h, err := formkit.NewHandler(cfg, fields, formkit.WithHandlerLogger(log.With(logger.Component("http"))))
	if err != nil {
		log.ErrorContext(ctx, "build handler", logger.Error(err))
		os.Exit(1)
	}

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log.With(logger.Component("server"))))
	if err := srv.Run(ctx, h.Routes()); err != nil {
		log.ErrorContext(ctx, "http server", logger.Error(err))
		os.Exit(1)
	}
}
