package cmd

import (
	"fmt"
	"strings"

	"github.com/goliatone/core.io-data-manager/core/codec"
	"github.com/goliatone/core.io-data-manager/core/config"
	"github.com/goliatone/core.io-data-manager/core/database"
	"github.com/goliatone/core.io-data-manager/core/export"
	"github.com/goliatone/core.io-data-manager/core/logger"
	"github.com/goliatone/core.io-data-manager/core/sync"
	"github.com/goliatone/core.io-data-manager/feature/store"
	"github.com/goliatone/core.io-data-manager/feature/transfer"

	"go.uber.org/zap"
)

// app bundles the wiring every command needs.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	provider *store.Provider
	service  *transfer.Service
	session  *sync.Session
	plugins  *sync.PluginRegistry
}

// bootstrap loads configuration, connects the database and wires the
// transfer service. Commands register the identities they operate on via
// registerEntity.
func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	provider := store.NewProvider(db, l, cfg.Import.SchemaCacheTTL())
	for _, entry := range strings.Split(cfg.Import.Entities, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		identity, table, _ := strings.Cut(entry, ":")
		provider.Register(store.Definition{Identity: identity, Table: table})
	}

	plugins := sync.NewPluginRegistry()
	session := sync.NewSession()
	codecs := codec.NewRegistry()
	engine := sync.NewEngine(provider, plugins, l)
	pipeline := export.New(provider, codecs, l)
	service := transfer.NewService(engine, pipeline, codecs, session, nil, l)

	return &app{
		cfg:      cfg,
		logger:   l,
		provider: provider,
		service:  service,
		session:  session,
		plugins:  plugins,
	}, nil
}

// registerEntity makes an identity resolvable if the configured entity
// list did not already cover it.
func (a *app) registerEntity(identity string) {
	for _, known := range a.provider.Identities() {
		if known == identity {
			return
		}
	}
	a.provider.Register(store.Definition{Identity: identity})
}
