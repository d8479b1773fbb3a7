package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	fullPaths bool
	showLogic bool
	maxPaths  int
)

var rootCmd = &cobra.Command{
	Use:   "netlistpathsctl",
	Short: "Query data-flow paths in an elaborated hardware netlist",
	Long: `netlistpathsctl loads a Verilator-style elaborated XML netlist dump and
answers reachability, waypoint, and fan-out/fan-in questions over its
signals and registers.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose diagnostic logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		BoolVar(&fullPaths, "full-paths", false, "Show full source file paths instead of just the basename")
	rootCmd.PersistentFlags().BoolVar(&showLogic, "show-logic", false, "Include logic (ASSIGN/ALWAYS) vertices in path reports")
	rootCmd.PersistentFlags().
		IntVar(&maxPaths, "max-paths", 0, "Cap the number of paths enumerated by all-paths queries (0 = unbounded)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the slog.Logger handed to netlist.Load, scaled by the
// global -v/-q flags.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// printInfo prints an info message if not in quiet mode.
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printJSON outputs v as indented JSON on stdout.
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
