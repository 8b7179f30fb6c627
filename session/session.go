// Package session is the driving loop around the grid: it owns the cell collection,
// the strategy cycle and the selection, and turns input events into frames.
package session

import (
	"errors"
	"fmt"

	"github.com/pdok/zgrid/grid"
	"github.com/pdok/zgrid/neighbor"
	"go.uber.org/zap"
)

const NoSelection = -1

type EventKind uint8

const (
	// NextStrategy advances the cycle, like a key press
	NextStrategy EventKind = iota
	// Select selects the cell at Index in the ordered collection
	Select
	// SelectCell selects the cell at Cell
	SelectCell
	// ClearSelection deselects
	ClearSelection
	// UseStrategy overrides the cycle with Strategy until the next NextStrategy
	UseStrategy
)

type Event struct {
	Kind     EventKind
	Index    int
	Cell     grid.Coordinate
	Strategy neighbor.Strategy
}

// Frame is everything a renderer needs for one tick
type Frame struct {
	Tick     uint64
	Cells    []grid.Cell // in Z order
	Groups   [][]uint    // per cell, most significant group first
	Strategy neighbor.Strategy
	Selected int               // index into Cells, NoSelection if none
	Matches  *neighbor.Matches // nil without selection
}

// SelectedCell returns the selected cell, if any
func (f Frame) SelectedCell() (grid.Cell, bool) {
	if f.Selected < 0 || f.Selected >= len(f.Cells) {
		return grid.Cell{}, false
	}
	return f.Cells[f.Selected], true
}

// Highlighted reports whether c should be drawn highlighted: it matched, or it is the
// selected cell itself (SharesNoBits does not match the selected cell).
func (f Frame) Highlighted(c grid.Coordinate) bool {
	if selected, ok := f.SelectedCell(); ok && selected.Coordinate == c {
		return true
	}
	return f.Matches.Contains(c)
}

func (f Frame) Coordinates() []grid.Coordinate {
	coordinates := make([]grid.Coordinate, len(f.Cells))
	for i := range f.Cells {
		coordinates[i] = f.Cells[i].Coordinate
	}
	return coordinates
}

type Session struct {
	logger     *zap.Logger
	grid       grid.Grid
	seq        *grid.Sequence
	classifier neighbor.Classifier
	cycle      neighbor.Cycle
	override   *neighbor.Strategy
	selected   int
	tick       uint64
}

// New creates a session over all cells of g. Every step of the cycle is checked against
// the grid, a mismatch is a configuration error.
func New(g grid.Grid, cycle neighbor.Cycle, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cycle.Len() == 0 {
		return nil, fmt.Errorf("%w: empty cycle", neighbor.ErrUnknownStrategy)
	}
	classifier := neighbor.New(g.Bits)
	for _, step := range cycle.Steps() {
		if err := classifier.Validate(step); err != nil {
			return nil, fmt.Errorf("cycle does not fit a %dx%d grid: %w", g.Dim, g.Dim, err)
		}
	}
	seq, err := grid.NewSequence(g, g.Cells())
	if err != nil {
		return nil, err
	}
	seq.Order()
	return &Session{
		logger:     logger.With(zap.Uint("dim", g.Dim)),
		grid:       g,
		seq:        seq,
		classifier: classifier,
		cycle:      cycle,
		selected:   NoSelection,
	}, nil
}

func (s *Session) Strategy() neighbor.Strategy {
	if s.override != nil {
		return *s.override
	}
	return s.cycle.Current()
}

func (s *Session) Selected() int {
	return s.selected
}

// Apply handles one event. Only an invalid UseStrategy is an error, selecting something
// that does not exist just results in no selection.
func (s *Session) Apply(e Event) error {
	switch e.Kind {
	case NextStrategy:
		s.cycle = s.cycle.Next()
		s.override = nil
		s.logger.Debug("next strategy", zap.Stringer("strategy", s.cycle.Current()))
	case UseStrategy:
		if err := s.classifier.Validate(e.Strategy); err != nil {
			return err
		}
		strategy := e.Strategy
		s.override = &strategy
		s.logger.Debug("use strategy", zap.Stringer("strategy", strategy))
	case Select:
		s.selected = e.Index
		s.logger.Debug("select", zap.Int("index", e.Index))
	case SelectCell:
		if !s.grid.Contains(e.Cell) {
			s.selected = NoSelection
			s.logger.Debug("cell outside grid", zap.Stringer("cell", e.Cell))
			return nil
		}
		s.selected = s.seq.IndexOf(e.Cell)
		s.logger.Debug("select cell", zap.Stringer("cell", e.Cell), zap.Int("index", s.selected))
	case ClearSelection:
		s.selected = NoSelection
		s.logger.Debug("clear selection")
	default:
		return fmt.Errorf("unknown event kind %d", e.Kind)
	}
	return nil
}

// Tick orders the collection and classifies it against the selection
func (s *Session) Tick() (Frame, error) {
	s.tick++
	s.seq.Order()
	strategy := s.Strategy()
	frame := Frame{
		Tick:     s.tick,
		Cells:    s.seq.Cells(),
		Groups:   make([][]uint, s.seq.Len()),
		Strategy: strategy,
		Selected: NoSelection,
	}
	for i := range frame.Groups {
		frame.Groups[i] = s.seq.Groups(i)
	}
	matches, err := s.classifier.Classify(frame.Coordinates(), s.selected, strategy)
	switch {
	case errors.Is(err, neighbor.ErrNoSelection):
		return frame, nil
	case err != nil:
		return frame, err
	}
	frame.Selected = s.selected
	frame.Matches = matches
	return frame, nil
}
