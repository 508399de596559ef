package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pricescan/catalog-service/config"
)

var (
	cfgFile      string
	snapshotPath string
	cfg          *config.Config
	logger       zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "catalog-service",
	Short: "Catalog Service CLI - offline catalog queries over a snapshot file",
	Long: `A CLI tool for running catalog queries against a product snapshot
file (CSV or XLSX) without a running server: ranked offer lists,
cheapest-store basket comparison and autocomplete suggestions.`,
	PersistentPreRun: persistentPreRun,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "snapshot", "", "product snapshot file (.csv or .xlsx)")

	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(cheapestCmd)
	rootCmd.AddCommand(suggestCmd)
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// Config is optional for snapshot-file commands
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
}

func persistentPreRun(cmd *cobra.Command, args []string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr}
	logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

func requireSnapshot(cmd *cobra.Command) (string, error) {
	if snapshotPath == "" {
		return "", fmt.Errorf("--snapshot is required for %s", cmd.Name())
	}
	return snapshotPath, nil
}
