// Package cli is the driving adapter: an interactive command loop reading
// one command per line from stdin and rendering results to stdout.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/presentation/tui"
	"svw.info/sudoku-cli/internal/usecase"
)

// Session drives one interactive game over a line-oriented stream pair.
type Session struct {
	svc    *usecase.Service
	in     *bufio.Scanner
	out    io.Writer
	tui    *tui.Renderer
	logger *slog.Logger
}

func NewSession(svc *usecase.Service, in io.Reader, out io.Writer, render *tui.Renderer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		tui:    render,
		logger: logger,
	}
}

// Run generates the starting board and processes commands until quit or
// EOF. Every command error is recovered: printed, then the loop continues.
func (s *Session) Run(ctx context.Context, size int) error {
	s.tui.Banner(s.out)
	if err := s.svc.Resize(ctx, size); err != nil {
		return fmt.Errorf("initial board: %w", err)
	}
	for {
		s.printBoard()
		fmt.Fprint(s.out, ">>> ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, "Thanks for playing!")
			return s.in.Err()
		}
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}
		quit, err := s.dispatch(ctx, line)
		if err != nil {
			fmt.Fprintln(s.out, s.tui.Error(err))
			if errors.Is(err, domain.ErrUnknownCommand) {
				fmt.Fprint(s.out, s.tui.Help())
			}
			s.logger.Debug("command failed", "input", line, "err", err)
			continue
		}
		if quit {
			fmt.Fprintln(s.out, "Thanks for playing!")
			return nil
		}
		if s.svc.Finished(ctx) {
			s.printBoard()
			fmt.Fprintln(s.out, s.tui.Congrats())
			return nil
		}
	}
}

func (s *Session) printBoard() {
	for row := range s.tui.BoardRows(s.svc.Board()) {
		fmt.Fprintln(s.out, row)
	}
}
