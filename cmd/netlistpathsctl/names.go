package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newNamesCmd())
}

func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names <netlist.xml>",
		Short: "List every named signal and register in the netlist",
		Long: `The names command prints every non-logic, named vertex (ports, wires,
registers), sorted by name, in a fixed-width table.

Example:
  netlistpathsctl names adder.xml
  netlistpathsctl names --json adder.xml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNames(args[0])
		},
	}
}

func runNames(path string) error {
	nl, cleanup, err := loadNetlist(path)
	if err != nil {
		return err
	}
	defer cleanup()

	ids := nl.GetNames()
	if jsonOut {
		names := make([]string, len(ids))
		for i, id := range ids {
			names[i] = nl.VertexName(id)
		}
		return printJSON(names)
	}
	nl.FormatNames(os.Stdout, ids, showLogic)
	return nil
}
