package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/padding"

	"github.com/pdok/zgrid/grid"
	"github.com/pdok/zgrid/morton"
	"github.com/pdok/zgrid/session"
)

// Board draws the frame as text: a row per y with the sequence index of every cell.
// The selected cell is <n>, other highlighted cells are [n]. Labels are right-aligned so the
// last digits of a column line up.
func Board(g grid.Grid, frame session.Frame, indentBy uint) string {
	indexes := make(map[grid.Coordinate]int, len(frame.Cells))
	for i, cell := range frame.Cells {
		indexes[cell.Coordinate] = i
	}
	width := len(strconv.Itoa(max(len(frame.Cells)-1, 0))) + 2
	selected, hasSelection := frame.SelectedCell()

	rows := make([]string, g.Dim)
	labels := make([]string, g.Dim)
	for y := uint(0); y < g.Dim; y++ {
		for x := uint(0); x < g.Dim; x++ {
			c := grid.Coordinate{x, y}
			i, ok := indexes[c]
			var label string
			switch {
			case !ok:
				label = " . "
			case hasSelection && selected.Coordinate == c:
				label = "<" + strconv.Itoa(i) + ">"
			case frame.Highlighted(c):
				label = "[" + strconv.Itoa(i) + "]"
			default:
				label = " " + strconv.Itoa(i) + " "
			}
			labels[x] = fmt.Sprintf("%*s", width, label)
		}
		rows[y] = strings.TrimRight(strings.Join(labels, " "), " ")
	}
	board := strings.Join(rows, "\n")
	if indentBy == 0 {
		return board
	}
	return indent.String(board, indentBy)
}

// Header summarizes the frame on one line
func Header(frame session.Frame) string {
	selected, ok := frame.SelectedCell()
	if !ok {
		return fmt.Sprintf("#%d %s, no selection", frame.Tick, frame.Strategy)
	}
	return fmt.Sprintf("#%d %s, selected %d %s, %d matches",
		frame.Tick, frame.Strategy, frame.Selected, selected.Coordinate, frame.Matches.Len())
}

// Listing has a line per cell in curve order: index, coordinate, code in binary and its groups
func Listing(bits morton.Bits, frame session.Frame) string {
	indexWidth := uint(len(strconv.Itoa(max(len(frame.Cells)-1, 0))))
	var sb strings.Builder
	for i, cell := range frame.Cells {
		groups := ""
		if i < len(frame.Groups) {
			groups = fmt.Sprint(frame.Groups[i])
		}
		sb.WriteString(padding.String(strconv.Itoa(i), indexWidth))
		sb.WriteString("  ")
		sb.WriteString(padding.String(cell.Coordinate.String(), coordinateWidth(bits)))
		sb.WriteString("  ")
		sb.WriteString(fmt.Sprintf("%0*b", 2*int(bits), cell.Z))
		sb.WriteString("  ")
		sb.WriteString(groups)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Matches lists the matched cells of the frame, in curve order
func Matches(frame session.Frame) string {
	coordinates := frame.Matches.Coordinates()
	labels := make([]string, len(coordinates))
	for i, c := range coordinates {
		labels[i] = c.String()
	}
	return strings.Join(labels, " ")
}

func coordinateWidth(bits morton.Bits) uint {
	digits := uint(len(strconv.Itoa(max(int(bits.Size())-1, 0))))
	return 2*digits + uint(len("(, )"))
}
