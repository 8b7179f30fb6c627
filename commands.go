package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/pdok/zgrid/config"
	"github.com/pdok/zgrid/grid"
	"github.com/pdok/zgrid/layout"
	"github.com/pdok/zgrid/morton"
	"github.com/pdok/zgrid/neighbor"
	"github.com/pdok/zgrid/session"
)

var errNoSelection = errors.New("select a cell with --index or with --x and --y")

// env is what every command starts from
type env struct {
	cfg     config.Config
	grid    grid.Grid
	logger  *zap.Logger
	session *session.Session
}

func setup(c *cli.Context) (*env, error) {
	cfg := config.Default()
	if path := c.String(CONFIG); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if c.IsSet(DIM) {
		cfg.Dim = c.Uint(DIM)
		// a configured cycle may not fit the new size
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	var logger *zap.Logger
	var err error
	if c.Bool(VERBOSE) {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	g, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	cycle, err := cfg.StrategyCycle(g)
	if err != nil {
		return nil, err
	}
	s, err := session.New(g, cycle, logger)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, grid: g, logger: logger, session: s}, nil
}

func (e *env) pixelLayout() layout.Layout {
	return layout.Layout{CellSize: e.cfg.Layout.CellSize, Padding: e.cfg.Layout.Padding}
}

// selectionEvent turns --index or --x and --y into an event. ok is false without either.
func selectionEvent(c *cli.Context) (e session.Event, ok bool) {
	switch {
	case c.IsSet(INDEX):
		return session.Event{Kind: session.Select, Index: c.Int(INDEX)}, true
	case c.IsSet(X) && c.IsSet(Y):
		return session.Event{Kind: session.SelectCell, Cell: grid.Coordinate{c.Uint(X), c.Uint(Y)}}, true
	default:
		return session.Event{}, false
	}
}

// strategyFromFlags accepts a full strategy like "SharesBitsAt(TopLevelParent)", or a bare
// name completed with --level or --radius
func strategyFromFlags(c *cli.Context, window uint) (neighbor.Strategy, error) {
	name := c.String(STRATEGY)
	if strings.Contains(name, "(") {
		return neighbor.ParseStrategy(name)
	}
	switch strcase.ToCamel(strings.TrimSpace(name)) {
	case neighbor.SharesNoBits.String():
		return neighbor.ParseStrategy(name)
	case neighbor.WithinSequence.String():
		radius := window
		if c.IsSet(RADIUS) {
			radius = c.Uint(RADIUS)
		}
		return neighbor.ParseStrategy(fmt.Sprintf("%s(%d)", name, radius))
	default:
		return neighbor.ParseStrategy(fmt.Sprintf("%s(%s)", name, c.String(LEVEL)))
	}
}

func orderAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer func() { _ = e.logger.Sync() }()
	frame, err := e.session.Tick()
	if err != nil {
		return err
	}
	canvas := e.pixelLayout().Canvas(e.grid)
	_, err = fmt.Fprintf(c.App.Writer, "%s# curve of %d px on a %dx%d px canvas\n",
		layout.Listing(e.grid.Bits, frame), e.pixelLayout().CurveLength(frame.Coordinates()),
		canvas.XSpan(), canvas.YSpan())
	return err
}

func classifyAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer func() { _ = e.logger.Sync() }()
	frame, err := e.classify(c)
	if err != nil {
		return err
	}
	if frame.Selected == session.NoSelection {
		return fmt.Errorf("%w: nothing selected in a %dx%d grid", neighbor.ErrNoSelection, e.grid.Dim, e.grid.Dim)
	}
	_, err = fmt.Fprintf(c.App.Writer, "%s\n%s\n%s\n",
		layout.Header(frame), layout.Board(e.grid, frame, 2), layout.Matches(frame))
	return err
}

// classify applies the selection and strategy flags and ticks once
func (e *env) classify(c *cli.Context) (session.Frame, error) {
	selection, ok := selectionEvent(c)
	if !ok {
		return session.Frame{}, errNoSelection
	}
	strategy, err := strategyFromFlags(c, e.cfg.Window)
	if err != nil {
		return session.Frame{}, err
	}
	for _, event := range []session.Event{selection, {Kind: session.UseStrategy, Strategy: strategy}} {
		if err = e.session.Apply(event); err != nil {
			return session.Frame{}, err
		}
	}
	return e.session.Tick()
}

func cycleAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer func() { _ = e.logger.Sync() }()
	selection, ok := selectionEvent(c)
	if !ok {
		return errNoSelection
	}
	cycle, err := e.cfg.StrategyCycle(e.grid)
	if err != nil {
		return err
	}
	events := make([]session.Event, 0, cycle.Len())
	events = append(events, selection)
	for i := 1; i < cycle.Len(); i++ {
		events = append(events, session.Event{Kind: session.NextStrategy})
	}
	frames, err := e.session.Replay(events)
	if err != nil {
		return err
	}
	// the first frame is from before the selection
	for _, frame := range frames[1:] {
		if _, err = fmt.Fprintf(c.App.Writer, "%s\n%s\n\n", layout.Header(frame), layout.Board(e.grid, frame, 2)); err != nil {
			return err
		}
	}
	return nil
}

func wktAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer func() { _ = e.logger.Sync() }()
	w := layout.Wkt{Layout: e.pixelLayout(), MaxLen: e.cfg.Layout.MaxWktLen}
	out := c.App.Writer

	var frame session.Frame
	if _, ok := selectionEvent(c); ok {
		frame, err = e.classify(c)
	} else {
		frame, err = e.session.Tick()
	}
	if err != nil {
		return err
	}
	if err = w.Cells(out, frame.Coordinates()); err != nil {
		return err
	}
	if err = w.Curve(out, frame.Coordinates()); err != nil {
		return err
	}
	if c.Bool(CENTERS) {
		if err = w.Centers(out, frame.Coordinates()); err != nil {
			return err
		}
	}
	for _, name := range c.StringSlice(QUADRANTS) {
		level, err := morton.ParseLevel(name)
		if err != nil {
			return err
		}
		if err = w.Quadrants(out, e.grid.Bits, level); err != nil {
			return err
		}
	}
	if err = w.Ancestry(out, e.grid.Bits, frame); err != nil {
		return err
	}
	return w.Highlights(out, frame)
}
