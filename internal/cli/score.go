package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/townmatch/townmatch/internal/config"
	"github.com/townmatch/townmatch/internal/database"
	"github.com/townmatch/townmatch/internal/match"
	"github.com/townmatch/townmatch/internal/output"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one town against a preference profile",
	Long: `Score a single town against a preference profile and show the full
factor breakdown per category.

Examples:
  townmatch score --profile myprofile --town Valencia
  townmatch score --profile prefs.json --town "Chiang Mai" -o json`,
	RunE: runScore,
}

var (
	scoreProfile string
	scoreTown    string
)

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringVar(&scoreProfile, "profile", "", "stored profile name or JSON file path (required)")
	scoreCmd.Flags().StringVar(&scoreTown, "town", "", "town name (required)")
	scoreCmd.MarkFlagRequired("profile")
	scoreCmd.MarkFlagRequired("town")
}

func runScore(cmd *cobra.Command, args []string) error {
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

	prefs, profileName, err := loadPreferences(ctx, db, scoreProfile)
	if err != nil {
		return err
	}

	town, err := db.GetTownByName(ctx, scoreTown)
	if err != nil {
		return fmt.Errorf("failed to look up town: %w", err)
	}
	if town == nil {
		return fmt.Errorf("town not found: %s", scoreTown)
	}

	hobbies, err := db.TownHobbies(ctx, town.ID)
	if err != nil {
		return fmt.Errorf("failed to resolve hobbies: %w", err)
	}

	engine, err := match.NewWithWeights(cfg.Scoring.Weights)
	if err != nil {
		return err
	}

	result, err := engine.Score(prefs, town.Candidate(hobbies))
	if err != nil {
		return err
	}

	return output.Output(outputFmt, &output.ScoreDetail{
		Town:    town.Name,
		Profile: profileName,
		Match:   result,
	})
}
