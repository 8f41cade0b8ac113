package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

var categoryJSON bool

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Browse curated categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	RunE:  runCategoryList,
}

var categoryShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show a category and its places",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryShow,
}

func init() {
	categoryShowCmd.Flags().BoolVar(&categoryJSON, "json", false, "output as JSON")
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryShowCmd)
	rootCmd.AddCommand(categoryCmd)
}

func runCategoryList(cmd *cobra.Command, _ []string) error {
	if categoryService == nil {
		return errors.New("category service not configured")
	}

	for _, category := range categoryService.All() {
		cmd.Printf("  %s %-25s %s\n", category.Emoji, category.Slug, category.Heading)
	}
	return nil
}

func runCategoryShow(cmd *cobra.Command, args []string) error {
	if categoryService == nil {
		return errors.New("category service not configured")
	}

	category, err := categoryService.GetBySlug(args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no category with slug %q", args[0])
	}
	if err != nil {
		return err
	}

	result, err := categoryService.Places(cmd.Context(), category.Slug)
	if err != nil {
		return fmt.Errorf("loading category places: %w", err)
	}

	if categoryJSON {
		return outputJSON(cmd, result)
	}

	cmd.Printf("%s %s\n", category.Emoji, category.Heading)
	cmd.Printf("%s\n\n", category.Description)
	return outputSearchTable(cmd, result)
}
