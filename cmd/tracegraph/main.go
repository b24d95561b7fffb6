package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/danpilch/tracegraph/pkg/callgraph"
	"github.com/danpilch/tracegraph/pkg/render"
	"github.com/danpilch/tracegraph/pkg/report"
	"github.com/danpilch/tracegraph/pkg/workload"
)

func main() {
	logger := logrus.New()

	var verbose bool
	root := &cobra.Command{
		Use:   "tracegraph",
		Short: "Opt-in call-graph profiler and renderer",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newDemoCmd(logger), newRenderCmd(), newReportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newDemoCmd(logger *logrus.Logger) *cobra.Command {
	var (
		outPath    string
		snapPath   string
		resolution int
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in instrumented workload and report on it",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := callgraph.New(logger)
			workload.Demo(reg, cmd.OutOrStdout())
			snap := reg.Snapshot()

			info := report.CollectRunInfo()
			report.Write(cmd.OutOrStdout(), snap, report.Options{
				TimeResolution: resolution,
				RunInfo:        &info,
			})

			if snapPath != "" {
				if err := snap.Save(snapPath); err != nil {
					return err
				}
				logger.WithField("path", snapPath).Debug("Saved snapshot")
			}
			if outPath != "" {
				return render.WriteFile(snap, render.Options{TimeResolution: resolution}, outPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "write the call graph to this file (.dot, .gv or any graphviz format)")
	cmd.Flags().StringVar(&snapPath, "snapshot", "", "also save the snapshot as JSON")
	cmd.Flags().IntVar(&resolution, "time-resolution", 2, "decimals shown for cumulative time")
	return cmd
}

func newRenderCmd() *cobra.Command {
	var (
		inPath     string
		outPath    string
		resolution int
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a saved snapshot as a directed call graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := callgraph.Load(inPath)
			if err != nil {
				return err
			}
			return render.WriteFile(snap, render.Options{TimeResolution: resolution}, outPath)
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "snapshot JSON file to render")
	cmd.Flags().StringVar(&outPath, "out", "callgraph.png", "output file (.dot, .gv or any graphviz format)")
	cmd.Flags().IntVar(&resolution, "time-resolution", 2, "decimals shown for cumulative time")
	cmd.MarkFlagRequired("in")
	return cmd
}

func newReportCmd() *cobra.Command {
	var (
		inPath     string
		resolution int
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a terminal summary of a saved snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := callgraph.Load(inPath)
			if err != nil {
				return err
			}
			report.Write(cmd.OutOrStdout(), snap, report.Options{TimeResolution: resolution})
			return nil
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "snapshot JSON file to summarize")
	cmd.Flags().IntVar(&resolution, "time-resolution", 2, "decimals shown for cumulative time")
	cmd.MarkFlagRequired("in")
	return cmd
}
