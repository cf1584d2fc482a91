package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blindsearch/internal/problemfile"
	"github.com/katalvlaran/blindsearch/internal/report"
)

var (
	// Global flags
	verbose      bool
	formatOutput string
	outputFile   string

	// logger is configured from --verbose before any command runs.
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "blindsearch",
	Short: "Uninformed search over route, colouring, grid and puzzle problems",
	Long: `blindsearch solves problems described in YAML files with uninformed
search: breadth-first, depth-first, iterative deepening, uniform-cost and
bidirectional search.

Problem kinds:
  route      reach a goal vertex of a graph
  coloring   colour a map so that no neighbours share a colour
  grid       cross a maze of passable and blocked cells
  puzzle     solve the 8-puzzle

Examples:
  # Solve with breadth-first search
  blindsearch run maze.yaml

  # Cheapest path, as JSON
  blindsearch run detour.yaml --algo ucs --format json

  # Every algorithm in one table
  blindsearch compare australia.yaml

  # Only the number of expanded states
  blindsearch run maze.yaml --query .expanded`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		_, err := report.ParseFormat(formatOutput)
		return err
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log search progress to stderr")
	rootCmd.PersistentFlags().StringVarP(&formatOutput, "format", "f", "", "output format: yaml, json, msgpack or table (default yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to a file instead of stdout")
}

// loadInstance reads and builds the problem file at path.
func loadInstance(path string) (*problemfile.Instance, error) {
	spec, err := problemfile.Load(path)
	if err != nil {
		return nil, err
	}
	in, err := problemfile.Build(spec)
	if err != nil {
		return nil, err
	}
	logger.Debug("problem loaded",
		slog.String("path", path),
		slog.String("kind", string(in.Kind)),
		slog.String("name", in.Name),
		slog.String("size", in.Describe),
	)

	return in, nil
}

// output writes runs in the selected format to --output or stdout.
func output(cmd *cobra.Command, defaultFormat report.Format, runs ...report.Summary) error {
	format := defaultFormat
	if formatOutput != "" {
		f, err := report.ParseFormat(formatOutput)
		if err != nil {
			return err
		}
		format = f
	}

	w, closeFn, err := destination(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	return report.Write(w, format, runs...)
}

func destination(cmd *cobra.Command) (io.Writer, func(), error) {
	if outputFile == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return f, func() { f.Close() }, nil
}
