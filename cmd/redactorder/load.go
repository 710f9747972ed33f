package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/redaction"
	"github.com/tsawler/redaction/exemption"
	"github.com/tsawler/redaction/model"
	"github.com/tsawler/redaction/order"
)

// loadFlags are the filters shared by commands that read input files
type loadFlags struct {
	pages  []int
	levels []string
}

// orderer builds the Orderer described by the config
func (a *app) orderer() (*order.Orderer, error) {
	oc, err := a.cfg.OrderConfig()
	if err != nil {
		return nil, err
	}
	return order.NewOrdererWithConfig(oc), nil
}

// loader builds the base Loader options from config and flags
func (a *app) loader(flags loadFlags) (func(string) *redaction.Loader, *order.Orderer, error) {
	oc, err := a.cfg.OrderConfig()
	if err != nil {
		return nil, nil, err
	}

	var levels []model.ConfidenceLevel
	for _, s := range flags.levels {
		level, err := model.ParseConfidenceLevel(s)
		if err != nil {
			return nil, nil, err
		}
		levels = append(levels, level)
	}

	var catalog *exemption.Catalog
	if a.cfg.ExemptionCatalog != "" {
		catalog, err = exemption.Load(a.cfg.ExemptionCatalog)
		if err != nil {
			return nil, nil, err
		}
	}

	open := func(path string) *redaction.Loader {
		l := redaction.Open(path).OrderConfig(oc)
		if len(flags.pages) > 0 {
			l = l.Pages(flags.pages...)
		}
		if len(levels) > 0 {
			l = l.Levels(levels...)
		}
		if catalog != nil {
			l = l.Catalog(catalog)
		}
		return l
	}
	return open, order.NewOrdererWithConfig(oc), nil
}

// loadAll reads every file concurrently and returns their items merged in
// argument order, unsorted
func (a *app) loadAll(ctx context.Context, flags loadFlags, paths []string) ([]*model.Redaction, *order.Orderer, error) {
	open, orderer, err := a.loader(flags)
	if err != nil {
		return nil, nil, err
	}

	results := make([][]*model.Redaction, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			items, warnings, err := open(path).Items()
			if err != nil {
				return err
			}
			for _, w := range warnings {
				a.logger.Warn("Input warning", zap.String("file", path), zap.String("item", w.ItemID), zap.String("message", w.Message))
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("loading input: %w", err)
	}

	var items []*model.Redaction
	for _, r := range results {
		items = append(items, r...)
	}
	a.logger.Debug("Loaded input", zap.Int("files", len(paths)), zap.Int("items", len(items)))
	return items, orderer, nil
}
