package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/townmatch/townmatch/internal/config"
	"github.com/townmatch/townmatch/internal/database"
	"github.com/townmatch/townmatch/internal/match"
	"github.com/townmatch/townmatch/internal/output"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage stored preference profiles",
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name> <file.json>",
	Short: "Save a preference profile from a JSON file",
	Args:  cobra.ExactArgs(2),
	RunE:  runProfileSave,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	RunE:  runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Display a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileDeleteCmd)
}

func runProfileSave(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name, path := args[0], args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	// Reject files that do not decode into the preference structure
	var prefs match.PreferenceProfile
	if err := json.Unmarshal(data, &prefs); err != nil {
		return fmt.Errorf("invalid profile JSON: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.SaveProfile(ctx, &database.Profile{Name: name, Data: string(data)}); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	NewTerminal().Successf("Saved profile %q\n", name)
	return nil
}

func runProfileList(cmd *cobra.Command, args []string) error {
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

	profiles, err := db.ListProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	return output.Output(outputFmt, profiles)
}

func runProfileShow(cmd *cobra.Command, args []string) error {
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

	profile, err := db.GetProfile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to look up profile: %w", err)
	}
	if profile == nil {
		return fmt.Errorf("profile not found: %s", args[0])
	}

	prefs, err := profile.Preferences()
	if err != nil {
		return fmt.Errorf("stored profile is corrupt: %w", err)
	}

	return output.JSON(prefs)
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
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

	if err := db.DeleteProfile(ctx, args[0]); err != nil {
		return err
	}

	NewTerminal().Successf("Deleted profile %q\n", args[0])
	return nil
}

// loadPreferences resolves a --profile argument: a readable .json
// path is decoded directly, anything else is looked up as a stored
// profile name.
func loadPreferences(ctx context.Context, db *database.DB, ref string) (*match.PreferenceProfile, string, error) {
	if strings.HasSuffix(ref, ".json") {
		data, err := os.ReadFile(ref)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read profile file: %w", err)
		}
		var prefs match.PreferenceProfile
		if err := json.Unmarshal(data, &prefs); err != nil {
			return nil, "", fmt.Errorf("invalid profile JSON: %w", err)
		}
		return &prefs, ref, nil
	}

	profile, err := db.GetProfile(ctx, ref)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up profile: %w", err)
	}
	if profile == nil {
		return nil, "", fmt.Errorf("profile not found: %s (save one with 'townmatch profile save')", ref)
	}

	prefs, err := profile.Preferences()
	if err != nil {
		return nil, "", fmt.Errorf("stored profile is corrupt: %w", err)
	}
	return prefs, profile.Name, nil
}
