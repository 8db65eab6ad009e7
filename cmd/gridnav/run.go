package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/export"
	"github.com/katalvlaran/gridnav/field"
	"github.com/katalvlaran/gridnav/footprint"
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/plan"
	"github.com/katalvlaran/gridnav/render"
)

var runFlags struct {
	robotWidth  int
	robotHeight int
	attGain     float64
	repGain     float64
	radius      float64
	csvOut      string
	jsonOut     string
	pngOut      string
	htmlOut     string
}

var runCmd = &cobra.Command{
	Use:   "run <mapfile>",
	Short: "Plan a path on a map file",
	Long: `Plan a path on a whitespace-separated map file using cell codes
0=free 1=obstacle 2=start 3=goal. The map must contain exactly one
start and one goal.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	log := logger()

	g, err := grid.LoadFile(args[0])
	if err != nil {
		return err
	}
	log.Debug("map loaded", "rows", g.Rows(), "cols", g.Cols(),
		"start", g.Start(), "goal", g.Goal())

	fieldOpts := []field.Option{
		field.WithAttractiveGain(runFlags.attGain),
		field.WithRepulsiveGain(runFlags.repGain),
		field.WithInfluenceRadius(runFlags.radius),
	}
	res, planErr := plan.Plan(g, g.Start(), g.Goal(),
		plan.WithRobot(runFlags.robotWidth, runFlags.robotHeight),
		plan.WithFieldOptions(fieldOpts...),
	)

	st := res.Stats
	fmt.Fprintf(cmd.OutOrStdout(),
		"status=%s strategy=%s waypoints=%d cost=%.3f expanded=%d steps=%d elapsed=%s\n",
		st.Status, st.Strategy, st.PathLength, st.PathCost,
		st.NodesExpanded, st.Steps, st.Elapsed)

	// Exports cover partial paths too, so failed attempts stay
	// inspectable.
	if err := writeArtifacts(g, res); err != nil {
		return err
	}

	return planErr
}

// writeArtifacts emits the requested CSV/JSON/PNG/HTML outputs.
func writeArtifacts(g *grid.Grid, res plan.Result) error {
	if runFlags.csvOut != "" && len(res.Path) > 0 {
		if err := writeFileWith(runFlags.csvOut, func(f *os.File) error {
			return export.WriteCSV(f, res.Path)
		}); err != nil {
			return err
		}
	}

	if runFlags.jsonOut != "" {
		if err := writeFileWith(runFlags.jsonOut, func(f *os.File) error {
			return export.WriteJSON(f, export.NewRecord("", res))
		}); err != nil {
			return err
		}
	}

	if runFlags.pngOut != "" {
		if err := render.SavePathPNG(runFlags.pngOut, g, res.Path, "gridnav run"); err != nil {
			return err
		}
	}

	if runFlags.htmlOut != "" {
		inflated, err := footprint.Inflate(g, runFlags.robotWidth, runFlags.robotHeight)
		if err != nil {
			return err
		}
		fld, err := field.Build(inflated, g.Goal(),
			field.WithAttractiveGain(runFlags.attGain),
			field.WithRepulsiveGain(runFlags.repGain),
			field.WithInfluenceRadius(runFlags.radius),
		)
		if err != nil {
			return err
		}
		if err := writeFileWith(runFlags.htmlOut, func(f *os.File) error {
			return render.PathChart(f, inflated, fld, res.Path, "gridnav run")
		}); err != nil {
			return err
		}
	}

	return nil
}

// writeFileWith creates path, runs fn on it and closes it.
func writeFileWith(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func init() {
	runCmd.Flags().IntVar(&runFlags.robotWidth, "robot-width", 1, "robot footprint width in cells")
	runCmd.Flags().IntVar(&runFlags.robotHeight, "robot-height", 1, "robot footprint height in cells")
	runCmd.Flags().Float64Var(&runFlags.attGain, "att-gain", field.DefaultAttractiveGain, "attractive gain")
	runCmd.Flags().Float64Var(&runFlags.repGain, "rep-gain", field.DefaultRepulsiveGain, "repulsive gain")
	runCmd.Flags().Float64Var(&runFlags.radius, "influence-radius", field.DefaultInfluenceRadius, "obstacle influence radius in cells")
	runCmd.Flags().StringVar(&runFlags.csvOut, "csv", "", "write path waypoints CSV to file")
	runCmd.Flags().StringVar(&runFlags.jsonOut, "json", "", "write outcome JSON to file")
	runCmd.Flags().StringVar(&runFlags.pngOut, "png", "", "write path PNG to file")
	runCmd.Flags().StringVar(&runFlags.htmlOut, "html", "", "write interactive field chart HTML to file")

	rootCmd.AddCommand(runCmd)
}
