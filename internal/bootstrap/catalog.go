package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/FactoryPlanner_Go/internal/catalog"
	"github.com/osse101/FactoryPlanner_Go/internal/config"
	"github.com/osse101/FactoryPlanner_Go/internal/metrics"
)

// LoadCatalog loads the catalog from cfg.CatalogDir, or the built-in data
// when unset, and publishes its size as metrics.
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	var (
		cat    *catalog.Catalog
		err    error
		source = "embedded"
	)
	if cfg.CatalogDir != "" {
		source = cfg.CatalogDir
		cat, err = catalog.NewLoader().Load(cfg.CatalogDir)
	} else {
		cat, err = catalog.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("%s from %s: %w", ErrMsgFailedLoadCatalog, source, err)
	}

	items, machines, recipes := len(cat.Items()), len(cat.Machines()), len(cat.Recipes())
	metrics.RecordCatalog(items, machines, recipes)
	slog.Info(LogMsgCatalogLoaded,
		"source", source,
		"items", items,
		"machines", machines,
		"recipes", recipes)

	return cat, nil
}
