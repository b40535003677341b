// Package app wires the shared dependency graph for the Lambda entry
// points.
package app

import (
	"context"
	"fmt"
	"log/slog"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jacentio/arbor/config"
	"github.com/jacentio/arbor/handler"
	"github.com/jacentio/arbor/internal/ids"
	"github.com/jacentio/arbor/store"
	"github.com/jacentio/arbor/stream"
	"github.com/jacentio/arbor/user"
)

// App holds everything a Lambda main needs.
type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Handler *handler.Handler
	Stream  *stream.Handler
}

// New loads configuration and builds the full dependency graph. Called
// once per cold start, from each main's init path.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := cfg.NewLogger()

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	st := store.New(dynamodb.NewFromConfig(awsCfg), store.Config{Table: cfg.Table})

	h := handler.New(handler.Config{
		Store:     st,
		IDs:       ids.UUIDSource{},
		Registrar: user.NewRegistrationService(st, logger),
		Finder:    user.NewRepository(st),
		Logger:    logger,
	})

	return &App{
		Config:  cfg,
		Logger:  logger,
		Handler: h,
		Stream:  stream.NewHandler(logger),
	}, nil
}

// MustNew is New with a panic on failure, for use in main before the
// runtime is up.
func MustNew(ctx context.Context) *App {
	a, err := New(ctx)
	if err != nil {
		panic("arbor: " + err.Error())
	}
	return a
}
