package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blindsearch/internal/problemfile"
	"github.com/katalvlaran/blindsearch/internal/report"
)

var compareAlgos []string

var compareCmd = &cobra.Command{
	Use:   "compare <problem.yaml>",
	Short: "Solve a problem file with several algorithms side by side",
	Long: `Run several algorithms on the same problem and print one row per run.

A run that fails (for example bidirectional search on a colouring without
a goal) is reported in its row and does not stop the others. The shared
flags of 'run' (--depth, --max-expansions, --timeout, --query) apply to
every run; the timeout applies to each run separately.

Examples:
  blindsearch compare australia.yaml
  blindsearch compare maze.yaml --algos bfs,ucs --format json
  blindsearch compare puzzle.yaml --query '[.[] | {algorithm, expanded}]'`,
	Args: cobra.ExactArgs(1),
	RunE: runCompare,
}

func init() {
	names := make([]string, 0, len(problemfile.Algorithms()))
	for _, a := range problemfile.Algorithms() {
		names = append(names, string(a))
	}
	compareCmd.Flags().StringSliceVar(&compareAlgos, "algos", names, "algorithms to run, in order")
	compareCmd.Flags().IntVarP(&runDepth, "depth", "d", problemfile.DepthUnset, "depth limit (dfs) or maximum depth (iddfs)")
	compareCmd.Flags().IntVar(&runMaxExpansions, "max-expansions", 0, "stop each run after expanding this many states")
	compareCmd.Flags().BoolVar(&runReopen, "reopen", false, "re-push states reached again at a shallower depth (dfs, iddfs)")
	compareCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "stop each run after this long")
	compareCmd.Flags().StringVarP(&runQuery, "query", "q", "", "jq expression applied to the JSON array of summaries")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	algos := make([]problemfile.Algorithm, 0, len(compareAlgos))
	for _, name := range compareAlgos {
		a, err := problemfile.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		algos = append(algos, a)
	}
	if len(algos) == 0 {
		return fmt.Errorf("--algos cannot be empty")
	}
	in, err := loadInstance(args[0])
	if err != nil {
		return err
	}

	runs := make([]report.Summary, 0, len(algos))
	for _, algo := range algos {
		ctx, cancel := searchContext(cmd.Context())
		out, runErr := in.Run(algo, problemfile.Params{Depth: runDepth, Options: searchOptions(ctx)})
		cancel()
		if runErr != nil {
			logger.Warn("search stopped", slog.String("algorithm", string(algo)), slog.Any("error", runErr))
		}
		runs = append(runs, report.New(in, out, runErr))
	}

	if runQuery != "" {
		w, closeFn, err := destination(cmd)
		if err != nil {
			return err
		}
		defer closeFn()
		return report.WriteQuery(w, runQuery, runs)
	}

	return output(cmd, report.FormatTable, runs...)
}
