package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const townColumns = `
	id, name, country, region, geo_region, regions,
	geographic_features, vegetation_types,
	summer_climate, winter_climate, humidity, sunshine, precipitation, seasonal_variation,
	pace_of_life, social_atmosphere, expat_community, primary_language, english_proficiency,
	dining_rating, events_rating, museums_rating,
	healthcare_score, safety_score, government_rating, stability_rating,
	visa_requirements, retirement_visa,
	cost_of_living, rent_1bed, healthcare_cost, airport_distance_km,
	created_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTown(s scanner) (*Town, error) {
	t := &Town{}
	var region, geoRegion, regions, geoFeatures, vegetation sql.NullString
	var summer, winter, humidity, sunshine, precipitation, seasonal sql.NullString
	var pace, social, expat, language, english, visa sql.NullString
	var healthcare, safety, government, stability sql.NullFloat64
	var costOfLiving, rent, healthcareCost, airportKm sql.NullFloat64

	err := s.Scan(
		&t.ID, &t.Name, &t.Country, &region, &geoRegion, &regions,
		&geoFeatures, &vegetation,
		&summer, &winter, &humidity, &sunshine, &precipitation, &seasonal,
		&pace, &social, &expat, &language, &english,
		&t.DiningRating, &t.EventsRating, &t.MuseumsRating,
		&healthcare, &safety, &government, &stability,
		&visa, &t.RetirementVisa,
		&costOfLiving, &rent, &healthcareCost, &airportKm,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Region = StringPtr(region)
	t.GeoRegion = StringPtr(geoRegion)
	t.Regions = StringPtr(regions)
	t.GeographicFeatures = StringPtr(geoFeatures)
	t.VegetationTypes = StringPtr(vegetation)
	t.SummerClimate = StringPtr(summer)
	t.WinterClimate = StringPtr(winter)
	t.Humidity = StringPtr(humidity)
	t.Sunshine = StringPtr(sunshine)
	t.Precipitation = StringPtr(precipitation)
	t.SeasonalVariation = StringPtr(seasonal)
	t.PaceOfLife = StringPtr(pace)
	t.SocialAtmosphere = StringPtr(social)
	t.ExpatCommunity = StringPtr(expat)
	t.PrimaryLanguage = StringPtr(language)
	t.EnglishProficiency = StringPtr(english)
	t.VisaRequirements = StringPtr(visa)
	t.HealthcareScore = Float64Ptr(healthcare)
	t.SafetyScore = Float64Ptr(safety)
	t.GovernmentRating = Float64Ptr(government)
	t.StabilityRating = Float64Ptr(stability)
	t.CostOfLiving = Float64Ptr(costOfLiving)
	t.RentOneBed = Float64Ptr(rent)
	t.HealthcareCost = Float64Ptr(healthcareCost)
	t.AirportDistanceKm = Float64Ptr(airportKm)
	return t, nil
}

// CreateTown inserts a new town
func (db *DB) CreateTown(ctx context.Context, t *Town) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO towns (`+townColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.ID, t.Name, t.Country, NullString(t.Region), NullString(t.GeoRegion), NullString(t.Regions),
		NullString(t.GeographicFeatures), NullString(t.VegetationTypes),
		NullString(t.SummerClimate), NullString(t.WinterClimate), NullString(t.Humidity),
		NullString(t.Sunshine), NullString(t.Precipitation), NullString(t.SeasonalVariation),
		NullString(t.PaceOfLife), NullString(t.SocialAtmosphere), NullString(t.ExpatCommunity),
		NullString(t.PrimaryLanguage), NullString(t.EnglishProficiency),
		t.DiningRating, t.EventsRating, t.MuseumsRating,
		NullFloat64(t.HealthcareScore), NullFloat64(t.SafetyScore),
		NullFloat64(t.GovernmentRating), NullFloat64(t.StabilityRating),
		NullString(t.VisaRequirements), t.RetirementVisa,
		NullFloat64(t.CostOfLiving), NullFloat64(t.RentOneBed),
		NullFloat64(t.HealthcareCost), NullFloat64(t.AirportDistanceKm),
		t.CreatedAt,
	)
	return err
}

// GetTown retrieves a town by ID
func (db *DB) GetTown(ctx context.Context, id string) (*Town, error) {
	row := db.QueryRowContext(ctx, `SELECT `+townColumns+` FROM towns WHERE id = ?`, id)
	t, err := scanTown(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return t, err
}

// GetTownByName retrieves a town by name (case-insensitive)
func (db *DB) GetTownByName(ctx context.Context, name string) (*Town, error) {
	row := db.QueryRowContext(ctx, `
		SELECT `+townColumns+` FROM towns
		WHERE LOWER(name) = LOWER(?)
		ORDER BY name LIMIT 1
	`, name)
	t, err := scanTown(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return t, err
}

// ListTowns retrieves towns with optional filters
func (db *DB) ListTowns(ctx context.Context, opts ListOptions) ([]Town, error) {
	query := `SELECT ` + townColumns + ` FROM towns WHERE 1=1`
	args := []interface{}{}

	if opts.Country != nil {
		query += " AND LOWER(country) = LOWER(?)"
		args = append(args, *opts.Country)
	}

	query += " ORDER BY country, name"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
		if opts.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, opts.Offset)
		}
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var towns []Town
	for rows.Next() {
		t, err := scanTown(rows)
		if err != nil {
			return nil, err
		}
		towns = append(towns, *t)
	}
	return towns, rows.Err()
}

// CreateHobby inserts a hobby catalog entry
func (db *DB) CreateHobby(ctx context.Context, h *Hobby) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.Category == "" {
		h.Category = HobbyActivity
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO hobbies (id, name, category, is_universal)
		VALUES (?, ?, ?, ?)
	`, h.ID, h.Name, h.Category, h.Universal)
	return err
}

// ListHobbies retrieves the full hobby catalog
func (db *DB) ListHobbies(ctx context.Context) ([]Hobby, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, category, is_universal
		FROM hobbies ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hobbies []Hobby
	for rows.Next() {
		var h Hobby
		if err := rows.Scan(&h.ID, &h.Name, &h.Category, &h.Universal); err != nil {
			return nil, err
		}
		hobbies = append(hobbies, h)
	}
	return hobbies, rows.Err()
}

// AssociateHobby links a hobby to a town
func (db *DB) AssociateHobby(ctx context.Context, townID, hobbyID string) error {
	_, err := db.ExecContext(ctx, `
		INSERT OR IGNORE INTO town_hobbies (town_id, hobby_id)
		VALUES (?, ?)
	`, townID, hobbyID)
	return err
}

// TownHobbies returns the names of all hobbies available in a town:
// universal catalog entries plus the town's own associations.
func (db *DB) TownHobbies(ctx context.Context, townID string) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT name FROM hobbies
		WHERE is_universal = 1
		   OR id IN (SELECT hobby_id FROM town_hobbies WHERE town_id = ?)
		ORDER BY name
	`, townID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// SaveProfile inserts or updates a named preference profile
func (db *DB) SaveProfile(ctx context.Context, p *Profile) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	_, err := db.ExecContext(ctx, `
		INSERT INTO profiles (id, name, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, p.ID, p.Name, p.Data, p.CreatedAt, p.UpdatedAt)
	return err
}

// GetProfile retrieves a profile by name (case-insensitive)
func (db *DB) GetProfile(ctx context.Context, name string) (*Profile, error) {
	p := &Profile{}
	err := db.QueryRowContext(ctx, `
		SELECT id, name, data, created_at, updated_at
		FROM profiles WHERE LOWER(name) = LOWER(?)
	`, name).Scan(&p.ID, &p.Name, &p.Data, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListProfiles retrieves all stored profiles
func (db *DB) ListProfiles(ctx context.Context) ([]Profile, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, data, created_at, updated_at
		FROM profiles ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.Data, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// DeleteProfile removes a stored profile by name
func (db *DB) DeleteProfile(ctx context.Context, name string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM profiles WHERE LOWER(name) = LOWER(?)`, name)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("profile not found: %s", name)
	}
	return nil
}
