package main

import (
	"context"
	"time"

	"github.com/city-rec/dropin-cli/internal/dataset"
	"github.com/city-rec/dropin-cli/internal/taxonomy"
)

// loadTable builds the taxonomy table, preferring the configured YAML
// override when one is set.
func loadTable() (*taxonomy.Table, error) {
	if cfg.Data.TaxonomyPath != "" {
		return taxonomy.Load(cfg.Data.TaxonomyPath)
	}
	return taxonomy.Default(), nil
}

// newLoader builds a dataset loader from config.
func newLoader() *dataset.Loader {
	return dataset.NewLoader(dataset.Options{
		Timeout:           time.Duration(cfg.Data.TimeoutSecs) * time.Second,
		MaxRetries:        cfg.Data.MaxRetries,
		RequestsPerSecond: cfg.Data.RequestsPerSec,
	})
}

// loadSnapshot fetches all three datasets and assembles a snapshot.
func loadSnapshot(ctx context.Context) (*dataset.Snapshot, error) {
	return newLoader().Load(ctx, dataset.Sources{
		Sessions:   cfg.Data.SessionsSource,
		Locations:  cfg.Data.LocationsSource,
		Facilities: cfg.Data.FacilitiesSource,
	})
}
