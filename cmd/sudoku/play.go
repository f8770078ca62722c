package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudoku-cli/internal/adapters/cli"
	"svw.info/sudoku-cli/internal/generator"
	"svw.info/sudoku-cli/internal/hint"
	"svw.info/sudoku-cli/internal/logging"
	"svw.info/sudoku-cli/internal/ports"
	"svw.info/sudoku-cli/internal/presentation/tui"
	"svw.info/sudoku-cli/internal/solver"
	"svw.info/sudoku-cli/internal/usecase"
	"svw.info/sudoku-cli/internal/validator"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive game",
	RunE:  runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	size, _ := cmd.Flags().GetInt("size")
	seed, _ := cmd.Flags().GetInt64("seed")
	solverKind, _ := cmd.Flags().GetString("solver")
	levelStr, _ := cmd.Flags().GetString("log-level")
	noColor, _ := cmd.Flags().GetBool("no-color")

	logger := logging.New(logging.ParseLevel(levelStr))

	// DLX by default, plain backtracking via flag.
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(solverKind)) {
	case "backtrack", "backtracking":
		s = solver.NewBacktrackingSolver()
	default:
		s = solver.NewDLXSolver()
	}

	// Wire providers → use case → CLI adapter.
	g := generator.NewUniqueGenerator(s)
	v := validator.New()
	h := hint.NewSingles()
	svc := usecase.NewService(s, g, v, h, logger, seed)
	render := tui.NewRenderer(noColor)
	sess := cli.NewSession(svc, os.Stdin, os.Stdout, render, logger)

	cmd.SilenceUsage = true
	return sess.Run(cmd.Context(), size)
}
