package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fanoutDegreeOnly bool

func init() {
	cmd := newFanoutCmd()
	cmd.Flags().BoolVar(&fanoutDegreeOnly, "degree", false, "Print only the fan-out degree (path count), not the paths")
	rootCmd.AddCommand(cmd)
}

func newFanoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fanout <netlist.xml> <start>",
		Short: "List (or count) every path fanning out from a start-point",
		Long: `The fanout command resolves start as a start-point and lists one path
from it to each reachable end-point (the path found by a single depth-first
search; other routes to the same end-point are not listed).

Example:
  netlistpathsctl fanout adder.xml i_a
  netlistpathsctl fanout --degree adder.xml i_a`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFanout(args[0], args[1])
		},
	}
}

func runFanout(xmlPath, start string) error {
	nl, cleanup, err := loadNetlist(xmlPath)
	if err != nil {
		return err
	}
	defer cleanup()

	if fanoutDegreeOnly {
		deg, err := nl.FanoutDegree(start)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(map[string]int{"fanout_degree": deg})
		}
		printInfo("%d\n", deg)
		return nil
	}

	paths, err := nl.GetAllFanout(start)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no fan-out paths found")
	}
	nl.FormatPaths(os.Stdout, paths, showLogic)
	return nil
}
