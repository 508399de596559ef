package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pricescan/catalog-service/internal/catalog"
	"github.com/pricescan/catalog-service/internal/index"
	"github.com/pricescan/catalog-service/internal/ranking"
)

var (
	rankSort string
	rankLat  float64
	rankLon  float64
)

var rankCmd = &cobra.Command{
	Use:   "rank <catalog-key>",
	Short: "Rank the offers for one catalog key",
	Args:  cobra.ExactArgs(1),
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankSort, "sort", "cheapest", "sort criterion: all, cheapest, nearest, newest, top_rated, featured")
	rankCmd.Flags().Float64Var(&rankLat, "lat", 0, "user latitude (for nearest)")
	rankCmd.Flags().Float64Var(&rankLon, "lon", 0, "user longitude (for nearest)")
}

func runRank(cmd *cobra.Command, args []string) error {
	path, err := requireSnapshot(cmd)
	if err != nil {
		return err
	}

	products, err := loadSnapshot(path)
	if err != nil {
		return err
	}

	criterion, ok := ranking.ParseCriterion(rankSort)
	if !ok {
		return fmt.Errorf("unknown sort criterion: %s", rankSort)
	}

	var userLocation *catalog.LatLng
	if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon") {
		userLocation = &catalog.LatLng{Latitude: rankLat, Longitude: rankLon}
	}

	groups := index.GroupByCatalogKey(products)
	ranked := ranking.Rank(groups[args[0]], criterion, userLocation)

	logger.Info().
		Str("key", args[0]).
		Str("criterion", string(criterion)).
		Int("offers", len(ranked)).
		Msg("Ranked offers")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(ranked)
}
