package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	pathsStart   string
	pathsFinish  string
	pathsThrough []string
	pathsAll     bool
	pathsExists  bool
)

func init() {
	cmd := newPathsCmd()
	cmd.Flags().StringVar(&pathsStart, "start", "", "Start-point name or regex (required)")
	cmd.Flags().StringVar(&pathsFinish, "finish", "", "Finish-point name or regex (required)")
	cmd.Flags().StringArrayVar(&pathsThrough, "through", nil, "Through-point name or regex (repeatable)")
	cmd.Flags().BoolVar(&pathsAll, "all", false, "Enumerate all paths between --start and the first --through (or --finish)")
	cmd.Flags().BoolVar(&pathsExists, "exists", false, "Only report whether a path exists, without printing it")
	rootCmd.AddCommand(cmd)
}

func newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths <netlist.xml>",
		Short: "Find data-flow paths between waypoints",
		Long: `The paths command resolves --start, any --through points, and --finish as
waypoints and reports a path satisfying all of them in order.

Example:
  netlistpathsctl paths --start i_a --finish o_sum adder.xml
  netlistpathsctl paths --start reg_in --through wire_mid --finish reg_out --all design.xml
  netlistpathsctl paths --start i_a --finish o_sum --exists adder.xml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaths(args[0])
		},
	}
}

func runPaths(path string) error {
	if pathsStart == "" || pathsFinish == "" {
		return fmt.Errorf("--start and --finish are required")
	}

	nl, cleanup, err := loadNetlist(path)
	if err != nil {
		return err
	}
	defer cleanup()

	if pathsExists && len(pathsThrough) == 0 {
		exists := nl.PathExists(pathsStart, pathsFinish)
		if jsonOut {
			return printJSON(map[string]bool{"exists": exists})
		}
		printInfo("%v\n", exists)
		if !exists {
			return fmt.Errorf("no path from %q to %q", pathsStart, pathsFinish)
		}
		return nil
	}

	nl.Waypoints.ClearWaypoints()
	if err := nl.Waypoints.AddStartPoint(pathsStart); err != nil {
		return err
	}
	for _, through := range pathsThrough {
		nl.Waypoints.AddThroughPoint(through)
	}
	if err := nl.Waypoints.AddFinishPoint(pathsFinish); err != nil {
		return err
	}

	if pathsExists {
		p, err := nl.GetAnyPathThroughWaypoints()
		if err != nil {
			return err
		}
		exists := len(p) > 0
		if jsonOut {
			return printJSON(map[string]bool{"exists": exists})
		}
		printInfo("%v\n", exists)
		if !exists {
			return fmt.Errorf("no path found")
		}
		return nil
	}

	if pathsAll {
		paths, err := nl.GetAllPathsThroughWaypoints()
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no paths found")
		}
		nl.FormatPaths(os.Stdout, paths, showLogic)
		return nil
	}

	p, err := nl.GetAnyPathThroughWaypoints()
	if err != nil {
		return err
	}
	if len(p) == 0 {
		return fmt.Errorf("no path found")
	}
	nl.FormatPath(os.Stdout, p, showLogic)
	return nil
}
