package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Interactive command-line sudoku",
	Long:  `An interactive sudoku game: generate boards of any perfect-square size, fill them in, and ask for the solution when you give up.`,
	RunE:  runPlay, // a bare invocation starts a game
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Int("size", 9, "board edge length, a perfect square")
	rootCmd.PersistentFlags().Int64("seed", 0, "generation seed, 0 picks one")
	rootCmd.PersistentFlags().String("solver", "dlx", "solver to use: dlx|backtrack")
	rootCmd.PersistentFlags().String("log-level", "info", "debug|info|warn|error")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}
