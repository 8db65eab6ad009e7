package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/render"
	"github.com/katalvlaran/gridnav/resultdb"
	"github.com/katalvlaran/gridnav/scenario"
)

var benchFlags struct {
	htmlOut string
	dbPath  string
	history int
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the full catalogue, chart it and record run history",
	RunE:  runBench,
}

func runBench(cmd *cobra.Command, args []string) error {
	log := logger()

	r := scenario.NewRunner(scenario.WithLogger(log))
	outs, err := r.RunAll(cmd.Context(), scenario.Catalogue())
	if err != nil {
		return err
	}

	sum := scenario.Summarize(outs)
	fmt.Fprintf(cmd.OutOrStdout(),
		"%d/%d succeeded (%.0f%%)  mean elapsed=%s  mean cost=%.3f (±%.3f)\n",
		sum.Succeeded, sum.Total, sum.SuccessRate*100,
		sum.MeanElapsed, sum.MeanCost, sum.StdDevCost)

	if benchFlags.htmlOut != "" {
		if err := writeFileWith(benchFlags.htmlOut, func(f *os.File) error {
			return render.BenchmarkChart(f, outs)
		}); err != nil {
			return err
		}
		log.Info("benchmark chart written", "path", benchFlags.htmlOut)
	}

	if benchFlags.dbPath != "" {
		store, err := resultdb.Open(benchFlags.dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if _, err := store.RecordBatch(outs); err != nil {
			return err
		}

		runs, err := store.RecentRuns(benchFlags.history)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "last %d recorded runs:\n", len(runs))
		for _, run := range runs {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %-12s %-16s cost=%.3f %s\n",
				run.CreatedAt.Format("2006-01-02 15:04:05"),
				run.Scenario, run.Status, run.PathCost, run.Elapsed)
		}
	}

	return nil
}

func init() {
	benchCmd.Flags().StringVar(&benchFlags.htmlOut, "html", "benchmark.html", "benchmark chart output file (empty to skip)")
	benchCmd.Flags().StringVar(&benchFlags.dbPath, "db", "gridnav.db", "run-history SQLite database (empty to skip)")
	benchCmd.Flags().IntVar(&benchFlags.history, "history", 20, "recent runs to display after recording")

	rootCmd.AddCommand(benchCmd)
}
