package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/townmatch/townmatch/internal/config"
	"github.com/townmatch/townmatch/internal/database"
	"github.com/townmatch/townmatch/internal/output"
)

var townsCmd = &cobra.Command{
	Use:   "towns",
	Short: "Browse the town catalog",
}

var townsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List towns",
	Long: `List towns in the catalog with optional filters.

Examples:
  townmatch towns list
  townmatch towns list --country Spain
  townmatch towns list -o json`,
	RunE: runTownsList,
}

var townsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Display one town in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runTownsShow,
}

var (
	townsCountry string
	townsLimit   int
)

func init() {
	rootCmd.AddCommand(townsCmd)

	townsCmd.AddCommand(townsListCmd)
	townsCmd.AddCommand(townsShowCmd)

	townsListCmd.Flags().StringVar(&townsCountry, "country", "", "filter by country")
	townsListCmd.Flags().IntVar(&townsLimit, "limit", 0, "maximum number of results")
}

func runTownsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	opts := database.ListOptions{Limit: townsLimit}
	if townsCountry != "" {
		opts.Country = &townsCountry
	}

	towns, err := db.ListTowns(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to list towns: %w", err)
	}

	return output.Output(outputFmt, towns)
}

func runTownsShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	town, err := db.GetTownByName(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to look up town: %w", err)
	}
	if town == nil {
		return fmt.Errorf("town not found: %s", args[0])
	}

	return output.Output(outputFmt, town)
}
