package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/townmatch/townmatch/internal/batch"
	"github.com/townmatch/townmatch/internal/database"
	"github.com/townmatch/townmatch/internal/match"
)

// ScoreDetail is the full breakdown for one profile-town pairing.
type ScoreDetail struct {
	Town    string             `json:"town"`
	Profile string             `json:"profile"`
	Match   *match.MatchResult `json:"match"`
}

// Output renders data in the requested format. The empty format means
// table.
func Output(format string, data interface{}) error {
	switch format {
	case "", "table":
		return Table(data)
	case "json":
		return JSON(data)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// JSON writes data as indented JSON to stdout.
func JSON(data interface{}) error {
	return JSONTo(os.Stdout, data)
}

// JSONTo writes data as indented JSON to w, newline-terminated.
func JSONTo(w io.Writer, data interface{}) error {
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(buf, '\n'))
	return err
}

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []batch.Result:
		return rankingTable(w, v)
	case *ScoreDetail:
		return scoreDetail(w, v)
	case []database.Town:
		return townsTable(w, v)
	case *database.Town:
		return townDetail(w, v)
	case []database.Hobby:
		return hobbiesTable(w, v)
	case []database.Profile:
		return profilesTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func rankingTable(w io.Writer, results []batch.Result) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No towns found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTOWN\tCOUNTRY\tOVERALL\tREG\tCLI\tCUL\tHOB\tADM\tCST\tQUALITY")
	fmt.Fprintln(tw, "-\t----\t-------\t-------\t---\t---\t---\t---\t---\t---\t-------")

	for i, r := range results {
		cats := r.Match.Categories
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
			i+1,
			truncate(r.Town.Name, 20),
			truncate(r.Town.Country, 16),
			r.Match.Overall,
			cats[match.CategoryRegion].Score,
			cats[match.CategoryClimate].Score,
			cats[match.CategoryCulture].Score,
			cats[match.CategoryHobbies].Score,
			cats[match.CategoryAdmin].Score,
			cats[match.CategoryCost].Score,
			qualityLabel(r.Match.Overall),
		)
	}

	return tw.Flush()
}

func scoreDetail(w io.Writer, d *ScoreDetail) error {
	fmt.Fprintf(w, "Town:     %s\n", d.Town)
	if d.Profile != "" {
		fmt.Fprintf(w, "Profile:  %s\n", d.Profile)
	}
	fmt.Fprintf(w, "Overall:  %d (%s)\n", d.Match.Overall, qualityLabel(d.Match.Overall))
	fmt.Fprintln(w)

	for _, name := range match.CategoryNames {
		cat, ok := d.Match.Categories[name]
		if !ok {
			continue
		}

		fmt.Fprintf(w, "%s: %d (%.0f/%.0f)\n", titleCase(name), cat.Score, cat.RawScore, cat.MaxScore)
		for _, f := range cat.Factors {
			fmt.Fprintf(w, "  %-48s %+.1f\n", f.Label, f.Points)
		}
		fmt.Fprintln(w)
	}

	return nil
}

func townsTable(w io.Writer, towns []database.Town) error {
	if len(towns) == 0 {
		fmt.Fprintln(w, "No towns found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TOWN\tCOUNTRY\tREGION\tCOST/MO\tHEALTHCARE\tSAFETY")
	fmt.Fprintln(tw, "----\t-------\t------\t-------\t----------\t------")

	for _, t := range towns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			truncate(t.Name, 20),
			truncate(t.Country, 16),
			truncate(strOrDash(t.Region), 20),
			moneyOrDash(t.CostOfLiving),
			ratingOrDash(t.HealthcareScore),
			ratingOrDash(t.SafetyScore),
		)
	}

	return tw.Flush()
}

func townDetail(w io.Writer, t *database.Town) error {
	fmt.Fprintf(w, "Town:        %s\n", t.Name)
	fmt.Fprintf(w, "Country:     %s\n", t.Country)
	if t.Region != nil {
		fmt.Fprintf(w, "Region:      %s\n", *t.Region)
	}
	if t.GeoRegion != nil {
		fmt.Fprintf(w, "Area:        %s\n", *t.GeoRegion)
	}
	if t.GeographicFeatures != nil {
		fmt.Fprintf(w, "Geography:   %s\n", *t.GeographicFeatures)
	}
	if t.VegetationTypes != nil {
		fmt.Fprintf(w, "Vegetation:  %s\n", *t.VegetationTypes)
	}
	if t.SummerClimate != nil || t.WinterClimate != nil {
		fmt.Fprintf(w, "Climate:     summer %s, winter %s\n",
			strOrDash(t.SummerClimate), strOrDash(t.WinterClimate))
	}
	if t.PrimaryLanguage != nil {
		fmt.Fprintf(w, "Language:    %s (English: %s)\n",
			*t.PrimaryLanguage, strOrDash(t.EnglishProficiency))
	}
	fmt.Fprintf(w, "Cost:        %s/mo, rent %s\n",
		moneyOrDash(t.CostOfLiving), moneyOrDash(t.RentOneBed))
	fmt.Fprintf(w, "Healthcare:  %s\n", ratingOrDash(t.HealthcareScore))
	fmt.Fprintf(w, "Safety:      %s\n", ratingOrDash(t.SafetyScore))
	if t.VisaRequirements != nil {
		fmt.Fprintf(w, "Visa:        %s\n", *t.VisaRequirements)
	}

	return nil
}

func hobbiesTable(w io.Writer, hobbies []database.Hobby) error {
	if len(hobbies) == 0 {
		fmt.Fprintln(w, "No hobbies found.")
		return nil
	}

	sorted := make([]database.Hobby, len(hobbies))
	copy(sorted, hobbies)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Universal != sorted[j].Universal {
			return sorted[i].Universal
		}
		return sorted[i].Name < sorted[j].Name
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HOBBY\tCATEGORY\tAVAILABILITY")
	fmt.Fprintln(tw, "-----\t--------\t------------")

	for _, h := range sorted {
		availability := "location-specific"
		if h.Universal {
			availability = "everywhere"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", truncate(h.Name, 25), h.Category, availability)
	}

	return tw.Flush()
}

func profilesTable(w io.Writer, profiles []database.Profile) error {
	if len(profiles) == 0 {
		fmt.Fprintln(w, "No profiles found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROFILE\tUPDATED")
	fmt.Fprintln(tw, "-------\t-------")

	for _, p := range profiles {
		fmt.Fprintf(tw, "%s\t%s\n", truncate(p.Name, 30), p.UpdatedAt.Format("Jan 02, 2006"))
	}

	return tw.Flush()
}

// qualityLabel maps an overall score to the display bucket.
func qualityLabel(score int) string {
	switch {
	case score >= 85:
		return "Excellent"
	case score >= 70:
		return "Very Good"
	case score >= 55:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Poor"
	}
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func moneyOrDash(f *float64) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("$%.0f", *f)
}

func ratingOrDash(f *float64) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *f)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
