package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/townmatch/townmatch/internal/batch"
	"github.com/townmatch/townmatch/internal/config"
	"github.com/townmatch/townmatch/internal/database"
	"github.com/townmatch/townmatch/internal/match"
	"github.com/townmatch/townmatch/internal/output"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank all towns against a preference profile",
	Long: `Score every town in the catalog against a preference profile and
list the best matches first.

Examples:
  townmatch rank --profile myprofile
  townmatch rank --profile myprofile --country Spain --top 5
  townmatch rank --profile prefs.json -o json`,
	RunE: runRank,
}

var (
	rankProfile string
	rankCountry string
	rankTop     int
)

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringVar(&rankProfile, "profile", "", "stored profile name or JSON file path (required)")
	rankCmd.Flags().StringVar(&rankCountry, "country", "", "restrict to one country")
	rankCmd.Flags().IntVar(&rankTop, "top", 0, "number of results to show (default from config)")
	rankCmd.MarkFlagRequired("profile")
}

func runRank(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Open database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	prefs, profileName, err := loadPreferences(ctx, db, rankProfile)
	if err != nil {
		return err
	}

	opts := database.ListOptions{}
	if rankCountry != "" {
		opts.Country = &rankCountry
	}

	towns, err := db.ListTowns(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to list towns: %w", err)
	}

	engine, err := match.NewWithWeights(cfg.Scoring.Weights)
	if err != nil {
		return err
	}

	runner := batch.NewRunner(engine, db, cfg.Batch.Workers)
	results, err := runner.Run(ctx, prefs, towns)
	if err != nil {
		return fmt.Errorf("failed to score towns: %w", err)
	}

	top := rankTop
	if top <= 0 {
		top = cfg.Batch.Top
	}
	if len(results) > top {
		results = results[:top]
	}

	if outputFmt == "table" || outputFmt == "" {
		term := NewTerminal()
		term.Infof("Ranked %d towns for profile %q\n\n", len(towns), profileName)
	}

	return output.Output(outputFmt, results)
}
