package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <problem.yaml>...",
	Short: "Check problem files without searching",
	Long: `Decode and build each problem file, reporting its kind and size.
The first invalid file stops the command with its error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			in, err := loadInstance(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %s %q, %s\n", path, in.Kind, in.Name, in.Describe)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
