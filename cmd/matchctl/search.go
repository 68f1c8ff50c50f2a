package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/donor-matching-service/internal/app"
	"github.com/donor-matching-service/internal/domain"
	"github.com/donor-matching-service/internal/pkg/validator"
	"github.com/donor-matching-service/internal/usecase/dto"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Rank candidates around a point",
	Long: `Filter candidates by blood group and location text, then rank them by
distance from the seeker. Candidates without coordinates or outside the
radius are dropped.

Examples:
  # O+ donors and blood banks near City Blood Bank
  matchctl search --lat 12.9716 --lon 77.5946 --group O+ --kinds donor,blood_bank

  # Oxygen suppliers in Kolathur as JSON
  matchctl search --lat 13.0827 --lon 80.2707 --kinds oxygen_supplier --format json`,
	RunE: runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.Float64("lat", 0, "seeker latitude")
	f.Float64("lon", 0, "seeker longitude")
	f.String("group", "", "blood group (O+, AB- ...)")
	f.Float64("radius", 0, "radius in km (0 = service default)")
	f.String("location", "", "case-insensitive location text")
	f.StringSlice("kinds", nil, "candidate kinds: donor, blood_bank, oxygen_supplier")
	f.Int("limit", 0, "maximum number of results")
	f.String("format", "table", "output format: table or json")
	_ = searchCmd.MarkFlagRequired("lat")
	_ = searchCmd.MarkFlagRequired("lon")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	f := cmd.Flags()

	lat, _ := f.GetFloat64("lat")
	lon, _ := f.GetFloat64("lon")
	group, _ := f.GetString("group")
	location, _ := f.GetString("location")
	kinds, _ := f.GetStringSlice("kinds")
	limit, _ := f.GetInt("limit")
	format, _ := f.GetString("format")

	req := dto.MatchSearchRequest{
		Lat:        &lat,
		Lon:        &lon,
		BloodGroup: group,
		Location:   location,
		Kinds:      kinds,
		Limit:      limit,
	}
	if f.Changed("radius") {
		radius, _ := f.GetFloat64("radius")
		req.RadiusKm = &radius
	}
	if err := validator.Validate(&req); err != nil {
		return fmt.Errorf("invalid search: %w", err)
	}

	repos, err := app.OpenRepositories(cfg, log)
	if err != nil {
		return err
	}
	defer repos.Close() //nolint:errcheck

	resp, err := app.NewMatchUseCase(cfg, repos, nil, nil, log).SearchMatches(ctx, req)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	return printResults(os.Stdout, resp, group, format)
}

func printResults(w io.Writer, resp *dto.MatchSearchResponse, group, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)

	case "table", "":
		if len(resp.Results) == 0 {
			_, err := fmt.Fprintf(w, "No candidates within %.1f km.\n", resp.RadiusKm)
			return err
		}

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tKIND\tNAME\tLOCATION\tDISTANCE_KM\tDETAIL")
		for i, r := range resp.Results {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.2f\t%s\n", i+1, r.Kind, r.Name, r.Location, r.DistanceKm, detail(r, group))
		}
		fmt.Fprintf(tw, "\n%d result(s) within %.1f km\n", resp.Total, resp.RadiusKm)
		return tw.Flush()
	}

	return fmt.Errorf("unknown format %q", format)
}

// detail - короткая справка по кандидату для табличного вывода
func detail(r dto.CandidateResult, group string) string {
	switch {
	case r.Donor != nil:
		return string(r.Donor.BloodGroup)
	case r.BloodBank != nil:
		if g, ok := domain.ParseBloodGroup(group); ok {
			return fmt.Sprintf("%s: %d units", g, r.BloodBank.Units(g))
		}
		return r.BloodBank.OperatingHours
	case r.Oxygen != nil:
		return r.Oxygen.Phone
	}
	return "-"
}
