package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pricescan/catalog-service/internal/suggest"
)

var suggestMax int

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Autocomplete product names from a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&suggestMax, "max", suggest.DefaultMaxResults, "maximum number of suggestions")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	path, err := requireSnapshot(cmd)
	if err != nil {
		return err
	}

	products, err := loadSnapshot(path)
	if err != nil {
		return err
	}

	universe := make([]string, len(products))
	for i, p := range products {
		universe[i] = p.Name
	}

	suggestions := suggest.New(suggestMax).Suggest(args[0], universe)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(suggestions)
}
