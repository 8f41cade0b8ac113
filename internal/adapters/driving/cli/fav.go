package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

var favCmd = &cobra.Command{
	Use:   "fav",
	Short: "Manage favorite places",
}

var favAddCmd = &cobra.Command{
	Use:   "add <slug>",
	Short: "Mark a place as a favorite",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavAdd,
}

var favRemoveCmd = &cobra.Command{
	Use:   "remove <slug>",
	Short: "Unmark a favorite place",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavRemove,
}

var favListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite places",
	RunE:  runFavList,
}

func init() {
	favCmd.AddCommand(favAddCmd)
	favCmd.AddCommand(favRemoveCmd)
	favCmd.AddCommand(favListCmd)
	rootCmd.AddCommand(favCmd)
}

// resolveSlug maps a slug to its place id through the directory.
func resolveSlug(cmd *cobra.Command, slug string) (*domain.Place, error) {
	if directoryService == nil {
		return nil, errors.New("directory service not configured")
	}
	place, err := directoryService.GetBySlug(cmd.Context(), slug)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("no place with slug %q", slug)
	}
	return place, err
}

func runFavAdd(cmd *cobra.Command, args []string) error {
	if favoritesStore == nil {
		return errors.New("favorites store not configured")
	}

	place, err := resolveSlug(cmd, args[0])
	if err != nil {
		return err
	}
	if err := favoritesStore.Add(cmd.Context(), place.ID); err != nil {
		return fmt.Errorf("adding favorite: %w", err)
	}
	cmd.Printf("Added %s to favorites.\n", place.Name)
	return nil
}

func runFavRemove(cmd *cobra.Command, args []string) error {
	if favoritesStore == nil {
		return errors.New("favorites store not configured")
	}

	place, err := resolveSlug(cmd, args[0])
	if err != nil {
		return err
	}
	if err := favoritesStore.Remove(cmd.Context(), place.ID); err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}
	cmd.Printf("Removed %s from favorites.\n", place.Name)
	return nil
}

func runFavList(cmd *cobra.Command, _ []string) error {
	if favoritesStore == nil {
		return errors.New("favorites store not configured")
	}
	if directoryService == nil {
		return errors.New("directory service not configured")
	}

	ids, err := favoritesStore.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing favorites: %w", err)
	}
	if len(ids) == 0 {
		cmd.Println("No favorites yet.")
		return nil
	}

	for _, id := range ids {
		place, err := directoryService.GetByID(cmd.Context(), id)
		if errors.Is(err, domain.ErrNotFound) {
			// Record removed from the corpus since it was favorited.
			cmd.Printf("  (missing) %s\n", id)
			continue
		}
		if err != nil {
			return fmt.Errorf("loading favorite %s: %w", id, err)
		}
		cmd.Printf("  %s (%s)\n", place.Name, place.Slug)
	}
	return nil
}
