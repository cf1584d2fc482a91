package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blindsearch/internal/problemfile"
	"github.com/katalvlaran/blindsearch/internal/report"
	"github.com/katalvlaran/blindsearch/search"
)

var (
	runAlgo          string
	runDepth         int
	runMaxExpansions int
	runTimeout       time.Duration
	runQuery         string
	runReopen        bool
)

var runCmd = &cobra.Command{
	Use:   "run <problem.yaml>",
	Short: "Solve a problem file with one algorithm",
	Long: `Load a problem file and search it with one algorithm.

--depth is the depth limit of dfs and the maximum depth of iddfs; other
algorithms ignore it. Without it dfs is unlimited and iddfs uses the
file's max_depth (32 when absent). --reopen lets a depth-limited dfs or
iddfs push a state again when it is reached at a shallower depth.

The summary is printed even when the search stops early, and the command
then exits non-zero.

Examples:
  blindsearch run maze.yaml --algo bidirectional
  blindsearch run line.yaml --algo dfs --depth 2 --format table
  blindsearch run puzzle.yaml --max-expansions 1000 --query '.actions | length'`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runAlgo, "algo", "a", string(problemfile.BFS), "algorithm: bfs, dfs, iddfs, ucs or bidirectional")
	runCmd.Flags().IntVarP(&runDepth, "depth", "d", problemfile.DepthUnset, "depth limit (dfs) or maximum depth (iddfs)")
	runCmd.Flags().IntVar(&runMaxExpansions, "max-expansions", 0, "stop after expanding this many states (0 for no cap)")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "stop after this long (0 for no timeout)")
	runCmd.Flags().BoolVar(&runReopen, "reopen", false, "re-push states reached again at a shallower depth (dfs, iddfs)")
	runCmd.Flags().StringVarP(&runQuery, "query", "q", "", "jq expression applied to the JSON summary")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	algo, err := problemfile.ParseAlgorithm(runAlgo)
	if err != nil {
		return err
	}
	in, err := loadInstance(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := searchContext(cmd.Context())
	defer cancel()
	out, runErr := in.Run(algo, problemfile.Params{Depth: runDepth, Options: searchOptions(ctx)})
	sum := report.New(in, out, runErr)
	if runErr != nil {
		logger.Warn("search stopped", slog.String("algorithm", string(algo)), slog.Any("error", runErr))
	}

	if runQuery != "" {
		w, closeFn, err := destination(cmd)
		if err != nil {
			return err
		}
		defer closeFn()
		if err := report.WriteQuery(w, runQuery, sum); err != nil {
			return err
		}
	} else if err := output(cmd, report.FormatYAML, sum); err != nil {
		return err
	}

	return runErr
}

// searchContext applies --timeout to parent.
func searchContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if runTimeout > 0 {
		return context.WithTimeout(parent, runTimeout)
	}

	return context.WithCancel(parent)
}

// searchOptions translates the shared flags into search options.
func searchOptions(ctx context.Context) []search.Option {
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithLogger(logger),
	}
	if runMaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(runMaxExpansions))
	}
	if runReopen {
		opts = append(opts, search.WithReopen())
	}

	return opts
}
