package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/blindsearch/internal/problemfile"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of problem files",
	Long: `Print the JSON Schema inferred from the problem file format, for
editors and linters. The output is always JSON; --format is ignored.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := problemfile.SchemaJSON()
		if err != nil {
			return err
		}
		w, closeFn, err := destination(cmd)
		if err != nil {
			return err
		}
		defer closeFn()
		_, err = w.Write(append(data, '\n'))
		return err
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
