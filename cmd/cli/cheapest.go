package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pricescan/catalog-service/internal/basket"
	"github.com/pricescan/catalog-service/internal/catalog"
	"github.com/pricescan/catalog-service/internal/index"
	"github.com/pricescan/catalog-service/internal/source"
)

var cheapestCmd = &cobra.Command{
	Use:   "cheapest <catalog-key>...",
	Short: "Find the cheapest stores covering a basket of catalog keys",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheapest,
}

func runCheapest(cmd *cobra.Command, args []string) error {
	path, err := requireSnapshot(cmd)
	if err != nil {
		return err
	}

	products, err := loadSnapshot(path)
	if err != nil {
		return err
	}

	// Build the selection from one representative offer per key
	groups := index.GroupByCatalogKey(products)
	selection := make([]catalog.Product, 0, len(args))
	for _, key := range args {
		offers, ok := groups[key]
		if !ok || len(offers) == 0 {
			return fmt.Errorf("no offers for catalog key %q in snapshot", key)
		}
		selection = append(selection, offers[0])
	}

	results := basket.CheapestStores(selection, products)

	logger.Info().
		Int("basket_items", len(selection)).
		Int("covering_stores", len(results)).
		Msg("Computed cheapest stores")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func loadSnapshot(path string) ([]catalog.Product, error) {
	products, err := source.LoadSnapshotFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	logger.Info().Int("products", len(products)).Str("file", path).Msg("Snapshot loaded")
	return products, nil
}
