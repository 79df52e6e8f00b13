package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/townmatch/townmatch/internal/config"
	"github.com/townmatch/townmatch/internal/database"
	"github.com/townmatch/townmatch/internal/output"
)

var hobbiesCmd = &cobra.Command{
	Use:   "hobbies",
	Short: "Browse the hobby catalog",
}

var hobbiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the hobby catalog",
	RunE:  runHobbiesList,
}

func init() {
	rootCmd.AddCommand(hobbiesCmd)
	hobbiesCmd.AddCommand(hobbiesListCmd)
}

func runHobbiesList(cmd *cobra.Command, args []string) error {
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

	hobbies, err := db.ListHobbies(ctx)
	if err != nil {
		return fmt.Errorf("failed to list hobbies: %w", err)
	}

	return output.Output(outputFmt, hobbies)
}
