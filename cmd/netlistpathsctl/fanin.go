package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var faninDegreeOnly bool

func init() {
	cmd := newFaninCmd()
	cmd.Flags().BoolVar(&faninDegreeOnly, "degree", false, "Print only the fan-in degree (path count), not the paths")
	rootCmd.AddCommand(cmd)
}

func newFaninCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fanin <netlist.xml> <end>",
		Short: "List (or count) every path fanning into an end-point",
		Long: `The fanin command resolves end as an end-point and lists one path into it
from each start-point that reaches it (the path found by a single
depth-first search; other routes from the same start-point are not listed).

Example:
  netlistpathsctl fanin adder.xml o_sum
  netlistpathsctl fanin --degree adder.xml o_sum`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFanin(args[0], args[1])
		},
	}
}

func runFanin(xmlPath, end string) error {
	nl, cleanup, err := loadNetlist(xmlPath)
	if err != nil {
		return err
	}
	defer cleanup()

	if faninDegreeOnly {
		deg, err := nl.FaninDegree(end)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(map[string]int{"fanin_degree": deg})
		}
		printInfo("%d\n", deg)
		return nil
	}

	paths, err := nl.GetAllFanin(end)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no fan-in paths found")
	}
	nl.FormatPaths(os.Stdout, paths, showLogic)
	return nil
}
