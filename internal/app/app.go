package app

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-sync/internal/cache"
	"github.com/carson-networks/expense-sync/internal/categorize"
	"github.com/carson-networks/expense-sync/internal/config"
	"github.com/carson-networks/expense-sync/internal/inference"
	"github.com/carson-networks/expense-sync/internal/ledger"
	"github.com/carson-networks/expense-sync/internal/reconcile"
	"github.com/carson-networks/expense-sync/internal/service"
	"github.com/carson-networks/expense-sync/internal/storage"
)

// App is the wired pipeline shared by the server and the one-shot CLI.
type App struct {
	Storage *storage.Storage
	Ledger  *ledger.Client
	Service *service.Service

	closers []io.Closer
}

func New(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*App, error) {
	apiKey, err := config.Require(cfg.Credentials.LedgerAPIKey, "LEDGER_API_KEY")
	if err != nil {
		return nil, err
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		return nil, err
	}
	a := &App{Storage: store}

	classifier, err := a.buildClassifier(ctx, cfg, log)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Ledger = ledger.NewClient(ctx, cfg.LedgerBaseURL, apiKey)
	adapter := ledger.NewAdapter(a.Ledger, cfg.DefaultCurrency, log.WithField("component", "ledger"))
	reconciler := reconcile.New(store.Transactions, store.SyncMeta, log.WithField("component", "reconcile"))

	a.Service = service.NewService(store, adapter, reconciler, classifier, service.SyncOptions{
		PageSize: cfg.SyncPageSize,
		MaxCount: cfg.SyncMaxCount,
	}, log.WithField("component", "service"))

	return a, nil
}

func (a *App) buildClassifier(ctx context.Context, cfg *config.Config, log *logrus.Logger) (categorize.Classifier, error) {
	rules, err := categorize.DefaultRules()
	if cfg.RulesPath != "" {
		rules, err = categorize.LoadRules(cfg.RulesPath)
	}
	if err != nil {
		return nil, errors.Wrap(err, "load category rules")
	}
	local := categorize.NewLocalClassifier(rules)

	if cfg.CategorizerMode == config.CategorizerKeyword {
		return categorize.New(categorize.ModeKeyword, local, nil, nil, log)
	}

	completer, err := inference.NewFromConfig(ctx, cfg)
	if errors.Is(err, config.ErrNotConfigured) {
		log.WithError(err).Warn("App.buildClassifier inference disabled, unresolved items fall back to Other")
		completer = nil
	} else if err != nil {
		return nil, err
	}

	var store cache.Store = a.Storage.CategoryCache
	if cfg.CacheBackend == config.CacheBackendBolt {
		bolt, err := cache.OpenBolt(cfg.BoltPath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, bolt)
		store = bolt
	}

	batch := categorize.NewBatchClassifier(completer, rules.Categories(), categorize.BatchConfig{
		BatchSize:   cfg.ClassifyBatchSize,
		Concurrency: cfg.ClassifyConcurrency,
		MaxTokens:   cfg.InferenceMaxTokens,
	}, log.WithField("component", "batch"))

	return categorize.New(cfg.CategorizerMode, local, cache.New(store, cfg.CacheFrontTTL, log.WithField("component", "cache")), batch, log)
}

// Close releases the database pool and any local cache file.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.Storage != nil {
		if err := a.Storage.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
