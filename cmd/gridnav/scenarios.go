package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Inspect and run the built-in scenario catalogue",
}

var scenariosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogue scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, s := range scenario.Catalogue() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s robot=%d×%d expect=%-16s %s\n",
				s.Name, s.RobotWidth, s.RobotHeight, s.Expect, s.Description)
		}

		return nil
	},
}

var scenariosRunCmd = &cobra.Command{
	Use:   "run [name...]",
	Short: "Run catalogue scenarios by name (all when none given)",
	RunE:  runScenarios,
}

func runScenarios(cmd *cobra.Command, args []string) error {
	list := scenario.Catalogue()
	if len(args) > 0 {
		list = list[:0:0]
		for _, name := range args {
			s, ok := scenario.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown scenario %q", name)
			}
			list = append(list, s)
		}
	}

	r := scenario.NewRunner(scenario.WithLogger(logger()))
	outs, err := r.RunAll(cmd.Context(), list)
	if err != nil {
		return err
	}

	for _, out := range outs {
		st := out.Result.Stats
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-16s cost=%-8.3f expanded=%-5d elapsed=%s\n",
			out.Scenario, st.Status, st.PathCost, st.NodesExpanded, st.Elapsed)
	}

	sum := scenario.Summarize(outs)
	fmt.Fprintf(cmd.OutOrStdout(), "%d/%d succeeded (%.0f%%)\n",
		sum.Succeeded, sum.Total, sum.SuccessRate*100)

	return nil
}

func init() {
	scenariosCmd.AddCommand(scenariosListCmd, scenariosRunCmd)
	rootCmd.AddCommand(scenariosCmd)
}
