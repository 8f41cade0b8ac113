package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
)

var validateQuiet bool

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate place record files",
	Long: `Validates one or more place record JSON files against the data
contract. Exits non-zero if any record is invalid, so it can gate a
contribution pipeline.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVarP(&validateQuiet, "quiet", "q", false, "only report failures")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validationService == nil {
		return errors.New("validation service not configured")
	}

	invalid := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		var place domain.Place
		if err := json.Unmarshal(data, &place); err != nil {
			invalid++
			cmd.PrintErrf("%s: invalid JSON: %v\n", path, err)
			continue
		}

		fieldErrs := validationService.ValidateRecord(&place)
		if len(fieldErrs) == 0 {
			if !validateQuiet {
				cmd.Printf("%s: ok\n", path)
			}
			continue
		}

		invalid++
		cmd.PrintErrf("%s:\n", path)
		for _, fe := range fieldErrs {
			cmd.PrintErrf("  %s: %s\n", fe.Field, fe.Message)
			if fe.Hint != "" {
				cmd.PrintErrf("    hint: %s\n", fe.Hint)
			}
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d invalid record(s)", invalid)
	}
	if !validateQuiet {
		cmd.Printf("All %d record(s) valid.\n", len(args))
	}
	return nil
}
