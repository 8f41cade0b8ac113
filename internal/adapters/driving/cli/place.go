package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

var (
	placeShowJSON bool
	placeListJSON bool
)

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Browse place records",
}

var placeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all places",
	RunE:  runPlaceList,
}

var placeShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show the full record for a place",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlaceShow,
}

func init() {
	placeListCmd.Flags().BoolVar(&placeListJSON, "json", false, "output as JSON")
	placeShowCmd.Flags().BoolVar(&placeShowJSON, "json", false, "output as JSON")
	placeCmd.AddCommand(placeListCmd)
	placeCmd.AddCommand(placeShowCmd)
	rootCmd.AddCommand(placeCmd)
}

func runPlaceList(cmd *cobra.Command, _ []string) error {
	if directoryService == nil {
		return errors.New("directory service not configured")
	}

	places, err := directoryService.AllPlaces(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing places: %w", err)
	}

	if placeListJSON {
		return outputJSON(cmd, places)
	}

	if len(places) == 0 {
		cmd.Println("No places in the directory.")
		return nil
	}
	for _, place := range places {
		cmd.Printf("  %-30s %-4s %s\n", place.Name, place.PriceRange, place.Slug)
	}
	return nil
}

func runPlaceShow(cmd *cobra.Command, args []string) error {
	if directoryService == nil {
		return errors.New("directory service not configured")
	}

	place, err := directoryService.GetBySlug(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no place with slug %q", args[0])
	}
	if err != nil {
		return fmt.Errorf("loading place: %w", err)
	}

	if placeShowJSON {
		return outputJSON(cmd, place)
	}

	cmd.Printf("%s (%s)\n", place.Name, place.PriceRange)
	cmd.Printf("  %s\n", place.Description)
	cmd.Printf("  Address:   %s\n", place.Address)
	if place.Phone != "" {
		cmd.Printf("  Phone:     %s\n", place.Phone)
	}
	if place.Website != "" {
		cmd.Printf("  Website:   %s\n", place.Website)
	}
	if len(place.CuisineTypes) > 0 {
		cmd.Printf("  Cuisines:  %s\n", strings.Join(place.CuisineTypes, ", "))
	}
	if len(place.Specialties) > 0 {
		cmd.Printf("  Specialties: %s\n", strings.Join(place.Specialties, ", "))
	}
	if len(place.Amenities) > 0 {
		cmd.Printf("  Amenities: %s\n", strings.Join(place.Amenities, ", "))
	}
	if len(place.OperatingHours) > 0 {
		cmd.Println("  Hours:")
		for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
			hours, ok := place.OperatingHours[day]
			if !ok {
				continue
			}
			if hours.Closed {
				cmd.Printf("    %-10s closed\n", day)
			} else {
				cmd.Printf("    %-10s %s - %s\n", day, hours.Open, hours.Close)
			}
		}
	}
	return nil
}
