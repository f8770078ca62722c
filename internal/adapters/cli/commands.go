package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"svw.info/sudoku-cli/internal/domain"
)

// dispatch parses a single command line and runs it. quit reports that the
// loop should end normally.
func (s *Session) dispatch(ctx context.Context, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "help":
		fmt.Fprint(s.out, s.tui.Help())

	case "setboardsize":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: setBoardSize <size>")
		}
		size, perr := strconv.Atoi(args[0])
		if perr != nil {
			return false, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidSize, args[0])
		}
		return false, s.svc.Resize(ctx, size)

	case "regenboard":
		return false, s.svc.Regenerate(ctx)

	case "setatposition", "pos":
		if len(args) != 3 {
			return false, fmt.Errorf("usage: setAtPosition <x> <y> <value>")
		}
		x, y, v, perr := parseCell(args)
		if perr != nil {
			return false, perr
		}
		return false, s.svc.SetCell(x, y, v)

	case "printsolution":
		sol, serr := s.svc.Solution(ctx)
		if serr != nil {
			return false, serr
		}
		for row := range s.tui.SolutionRows(sol) {
			fmt.Fprintln(s.out, row)
		}

	case "validate":
		ok, conflicts, verr := s.svc.Validate(ctx)
		if verr != nil {
			return false, verr
		}
		if ok {
			fmt.Fprintln(s.out, "no conflicts")
		} else {
			for _, c := range conflicts {
				fmt.Fprintf(s.out, "conflict at (%d, %d)\n", c.X, c.Y)
			}
		}

	case "hint":
		h, ok, herr := s.svc.Hint(ctx)
		if herr != nil {
			return false, herr
		}
		if !ok {
			fmt.Fprintln(s.out, "no forced placement found")
		} else {
			fmt.Fprintln(s.out, h.Message)
		}

	case "clear":
		return false, s.svc.Reset()

	case "quit", "exit":
		return true, nil

	default:
		return false, fmt.Errorf("%w: %q", domain.ErrUnknownCommand, cmd)
	}
	return false, nil
}

// parseCell reads the three setAtPosition arguments. Tokens that are not
// numbers are plain parse errors; the sentinels are reserved for semantic
// bounds and range violations.
func parseCell(args []string) (x, y int, v uint8, err error) {
	x, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid x: %q is not a number", args[0])
	}
	y, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid y: %q is not a number", args[1])
	}
	val, err := strconv.Atoi(args[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid value: %q is not a number", args[2])
	}
	if val < 0 || val > math.MaxUint8 {
		return 0, 0, 0, fmt.Errorf("%w: %d", domain.ErrInvalidValue, val)
	}
	return x, y, uint8(val), nil
}
