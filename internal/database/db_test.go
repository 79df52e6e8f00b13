package database

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/townmatch/townmatch/internal/match"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "townmatch-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := Open(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open database: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return db, cleanup
}

func TestOpen(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	if db == nil {
		t.Fatal("expected non-nil database")
	}

	// Verify tables exist
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='towns'").Scan(&count)
	if err != nil {
		t.Fatalf("failed to query tables: %v", err)
	}
	if count != 1 {
		t.Errorf("expected towns table to exist")
	}

	// First open seeds the starter catalog
	var towns int
	if err := db.QueryRow("SELECT COUNT(*) FROM towns").Scan(&towns); err != nil {
		t.Fatalf("failed to count towns: %v", err)
	}
	if towns == 0 {
		t.Error("expected seed towns after first open")
	}
}

func TestTownCRUD(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	region := "Algarve"
	features := "coastal"
	cost := 1400.0
	town := &Town{
		Name:               "Lagos",
		Country:            "Portugal",
		Region:             &region,
		GeographicFeatures: &features,
		CostOfLiving:       &cost,
	}

	if err := db.CreateTown(ctx, town); err != nil {
		t.Fatalf("CreateTown failed: %v", err)
	}
	if town.ID == "" {
		t.Error("expected ID to be set after create")
	}

	fetched, err := db.GetTown(ctx, town.ID)
	if err != nil {
		t.Fatalf("GetTown failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected town, got nil")
	}
	if fetched.Name != "Lagos" || fetched.Country != "Portugal" {
		t.Errorf("fetched = %s/%s, want Lagos/Portugal", fetched.Name, fetched.Country)
	}
	if fetched.CostOfLiving == nil || *fetched.CostOfLiving != 1400 {
		t.Errorf("CostOfLiving = %v, want 1400", fetched.CostOfLiving)
	}

	byName, err := db.GetTownByName(ctx, "lagos")
	if err != nil {
		t.Fatalf("GetTownByName failed: %v", err)
	}
	if byName == nil || byName.ID != town.ID {
		t.Errorf("GetTownByName returned %+v, want id %s", byName, town.ID)
	}

	missing, err := db.GetTownByName(ctx, "atlantis")
	if err != nil {
		t.Fatalf("GetTownByName failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown town, got %+v", missing)
	}
}

func TestListTowns(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	country := "Spain"
	towns, err := db.ListTowns(ctx, ListOptions{Country: &country})
	if err != nil {
		t.Fatalf("ListTowns failed: %v", err)
	}
	if len(towns) != 2 {
		t.Errorf("len(towns) = %d, want 2 seeded Spanish towns", len(towns))
	}
	for _, town := range towns {
		if town.Country != "Spain" {
			t.Errorf("country filter leaked: got %s", town.Country)
		}
	}

	limited, err := db.ListTowns(ctx, ListOptions{Limit: 3})
	if err != nil {
		t.Fatalf("ListTowns failed: %v", err)
	}
	if len(limited) != 3 {
		t.Errorf("len(limited) = %d, want 3", len(limited))
	}
}

func TestTownHobbies(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	town, err := db.GetTownByName(ctx, "Valencia")
	if err != nil || town == nil {
		t.Fatalf("GetTownByName failed: %v (%+v)", err, town)
	}

	names, err := db.TownHobbies(ctx, town.ID)
	if err != nil {
		t.Fatalf("TownHobbies failed: %v", err)
	}

	got := make(map[string]bool, len(names))
	for _, n := range names {
		got[n] = true
	}

	// Universal hobbies are always present; Sailing comes from the
	// association table; Downhill Skiing belongs to another town.
	if !got["Walking"] {
		t.Error("expected universal hobby Walking")
	}
	if !got["Sailing"] {
		t.Error("expected associated hobby Sailing")
	}
	if got["Downhill Skiing"] {
		t.Error("did not expect Downhill Skiing in Valencia")
	}
}

func TestAssociateHobby(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	town, err := db.GetTownByName(ctx, "Bled")
	if err != nil || town == nil {
		t.Fatalf("GetTownByName failed: %v", err)
	}

	hobby := &Hobby{Name: "Ice Skating", Category: HobbyActivity}
	if err := db.CreateHobby(ctx, hobby); err != nil {
		t.Fatalf("CreateHobby failed: %v", err)
	}
	if err := db.AssociateHobby(ctx, town.ID, hobby.ID); err != nil {
		t.Fatalf("AssociateHobby failed: %v", err)
	}
	// Duplicate association is ignored
	if err := db.AssociateHobby(ctx, town.ID, hobby.ID); err != nil {
		t.Fatalf("duplicate AssociateHobby failed: %v", err)
	}

	names, err := db.TownHobbies(ctx, town.ID)
	if err != nil {
		t.Fatalf("TownHobbies failed: %v", err)
	}
	found := false
	for _, n := range names {
		if n == "Ice Skating" {
			found = true
		}
	}
	if !found {
		t.Error("expected Ice Skating after association")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	prefs := &match.PreferenceProfile{
		Region: &match.RegionPreferences{Countries: []string{"Spain"}},
		Cost:   &match.CostPreferences{MonthlyBudget: 2500},
	}
	data, err := json.Marshal(prefs)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	profile := &Profile{Name: "coastal-retirement", Data: string(data)}
	if err := db.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	fetched, err := db.GetProfile(ctx, "Coastal-Retirement")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected profile, got nil")
	}

	decoded, err := fetched.Preferences()
	if err != nil {
		t.Fatalf("Preferences failed: %v", err)
	}
	if decoded.Region == nil || len(decoded.Region.Countries) != 1 || decoded.Region.Countries[0] != "Spain" {
		t.Errorf("decoded region = %+v, want countries [Spain]", decoded.Region)
	}
	if decoded.Cost == nil || decoded.Cost.MonthlyBudget != 2500 {
		t.Errorf("decoded cost = %+v, want budget 2500", decoded.Cost)
	}

	// Saving under the same name updates in place
	prefs.Cost.MonthlyBudget = 3000
	data, _ = json.Marshal(prefs)
	if err := db.SaveProfile(ctx, &Profile{Name: "coastal-retirement", Data: string(data)}); err != nil {
		t.Fatalf("SaveProfile update failed: %v", err)
	}

	profiles, err := db.ListProfiles(ctx)
	if err != nil {
		t.Fatalf("ListProfiles failed: %v", err)
	}
	if len(profiles) != 1 {
		t.Errorf("len(profiles) = %d, want 1", len(profiles))
	}

	if err := db.DeleteProfile(ctx, "coastal-retirement"); err != nil {
		t.Fatalf("DeleteProfile failed: %v", err)
	}
	if err := db.DeleteProfile(ctx, "coastal-retirement"); err == nil {
		t.Error("expected error deleting missing profile")
	}
}

func TestTownCandidate(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	town, err := db.GetTownByName(ctx, "Porto")
	if err != nil || town == nil {
		t.Fatalf("GetTownByName failed: %v", err)
	}

	hobbies, err := db.TownHobbies(ctx, town.ID)
	if err != nil {
		t.Fatalf("TownHobbies failed: %v", err)
	}

	c := town.Candidate(hobbies)
	if c.Country != "Portugal" {
		t.Errorf("Country = %s, want Portugal", c.Country)
	}
	if len(c.GeographicFeatures) != 2 {
		t.Errorf("GeographicFeatures = %v, want [coastal river]", c.GeographicFeatures)
	}
	if len(c.Hobbies) == 0 {
		t.Error("expected resolved hobbies")
	}
}
