package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/pdok/zgrid/grid"
	"github.com/pdok/zgrid/layout"
	"github.com/pdok/zgrid/neighbor"
	"github.com/pdok/zgrid/session"
)

var (
	errQuit       = errors.New("quit")
	errBadCommand = errors.New("bad command")
)

// parseCommand reads one line of play input. Empty lines give ok false.
func parseCommand(line string) (e session.Event, ok bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return e, false, nil
	}
	switch fields[0] {
	case "q", "quit":
		return e, false, errQuit
	case "n", "next":
		return session.Event{Kind: session.NextStrategy}, true, nil
	case "c", "clear":
		return session.Event{Kind: session.ClearSelection}, true, nil
	case "i", "index":
		if len(fields) != 2 {
			return e, false, fmt.Errorf("%w: %q, want i N", errBadCommand, line)
		}
		index, err := strconv.Atoi(fields[1])
		if err != nil {
			return e, false, fmt.Errorf("%w: %q: %w", errBadCommand, line, err)
		}
		return session.Event{Kind: session.Select, Index: index}, true, nil
	case "s", "strategy":
		strategy, err := neighbor.ParseStrategy(strings.Join(fields[1:], ""))
		if err != nil {
			return e, false, err
		}
		return session.Event{Kind: session.UseStrategy, Strategy: strategy}, true, nil
	}
	if len(fields) != 2 {
		return e, false, fmt.Errorf("%w: %q", errBadCommand, line)
	}
	x, errX := strconv.ParseUint(fields[0], 10, 32)
	y, errY := strconv.ParseUint(fields[1], 10, 32)
	if err = errors.Join(errX, errY); err != nil {
		return e, false, fmt.Errorf("%w: %q: %w", errBadCommand, line, err)
	}
	return session.Event{Kind: session.SelectCell, Cell: grid.Coordinate{uint(x), uint(y)}}, true, nil
}

// play drives the session from the lines of in until q or the end of input.
// Lines that do not parse, and strategies that do not fit the grid, are logged and skipped.
func play(in io.Reader, out io.Writer, g grid.Grid, s *session.Session, logger *zap.Logger) error {
	events := make(chan session.Event)
	frames := make(chan session.Frame)
	classifier := neighbor.New(g.Bits)

	go func() {
		defer close(events)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			e, ok, err := parseCommand(scanner.Text())
			if errors.Is(err, errQuit) {
				return
			}
			if err == nil && e.Kind == session.UseStrategy {
				err = classifier.Validate(e.Strategy)
			}
			if err != nil {
				logger.Warn("skipping command", zap.Error(err))
				continue
			}
			if ok {
				events <- e
			}
		}
		if err := scanner.Err(); err != nil {
			logger.Error("could not read commands", zap.Error(err))
		}
	}()

	runErr := make(chan error, 1)
	go func() {
		runErr <- s.Run(events, frames)
	}()

	var writeErr error
	for frame := range frames {
		if writeErr != nil {
			continue
		}
		_, writeErr = fmt.Fprintf(out, "%s\n%s\n\n", layout.Header(frame), layout.Board(g, frame, 2))
	}
	return errors.Join(<-runErr, writeErr)
}

func playAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer func() { _ = e.logger.Sync() }()
	in := c.App.Reader
	if in == nil {
		in = os.Stdin
	}
	return play(in, c.App.Writer, e.grid, e.session, e.logger)
}
