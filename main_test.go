package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdok/zgrid/grid"
	"github.com/pdok/zgrid/morton"
	"github.com/pdok/zgrid/neighbor"
	"github.com/pdok/zgrid/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	err := app.Run(append([]string{"zgrid"}, args...))
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line    string
		want    session.Event
		wantOk  bool
		wantErr error
	}{
		{line: "", wantOk: false},
		{line: "   ", wantOk: false},
		{line: "n", want: session.Event{Kind: session.NextStrategy}, wantOk: true},
		{line: "c", want: session.Event{Kind: session.ClearSelection}, wantOk: true},
		{line: "i 12", want: session.Event{Kind: session.Select, Index: 12}, wantOk: true},
		{line: "3 5", want: session.Event{Kind: session.SelectCell, Cell: grid.Coordinate{3, 5}}, wantOk: true},
		{line: "s SharesBitsAt(TopLevelParent)", want: session.Event{Kind: session.UseStrategy, Strategy: neighbor.BitsAt(morton.TopLevelParent)}, wantOk: true},
		{line: "s within-sequence( 2 )", want: session.Event{Kind: session.UseStrategy, Strategy: neighbor.Window(2)}, wantOk: true},
		{line: "q", wantErr: errQuit},
		{line: "i", wantErr: errBadCommand},
		{line: "i two", wantErr: errBadCommand},
		{line: "3 -5", wantErr: errBadCommand},
		{line: "1 2 3", wantErr: errBadCommand},
		{line: "s Nearest", wantErr: neighbor.ErrUnknownStrategy},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok, err := parseCommand(tt.line)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlay(t *testing.T) {
	g := grid.MustNew(4)
	cycle, err := neighbor.DefaultCycle(g.Bits)
	require.NoError(t, err)
	logger := zaptest.NewLogger(t)
	s, err := session.New(g, cycle, logger)
	require.NoError(t, err)

	input := strings.Join([]string{
		"3 3",
		"n",
		"bogus",
		"s SharesBitsAt(TopLevelParent)",
		"s shares-no-bits",
		"q",
		"c",
	}, "\n")
	var out bytes.Buffer
	require.NoError(t, play(strings.NewReader(input), &out, g, s, logger))

	assert.Contains(t, out.String(), "#1 SharesBitsAt(WholeGrid), no selection")
	assert.Contains(t, out.String(), "#2 SharesBitsAt(WholeGrid), selected 15 (3, 3), 4 matches")
	assert.Contains(t, out.String(), "#3 SharesAncestryThrough(WholeGrid), selected 15 (3, 3), 4 matches")
	assert.Contains(t, out.String(), "#4 SharesNoBits, selected 15 (3, 3), 1 matches")
	// nothing after q
	assert.NotContains(t, out.String(), "#5")
}

func TestApp_order(t *testing.T) {
	out, err := run(t, "--dim", "4", "order")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 17)
	assert.True(t, strings.HasPrefix(lines[3], "3   (1, 1)  0011"), lines[3])
	assert.Equal(t, "# curve of 1584 px on a 258x258 px canvas", lines[16])
}

func TestApp_classify(t *testing.T) {
	out, err := run(t, "-d", "4", "classify", "--x", "3", "--y", "3", "--strategy", "SharesNoBits")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "#1 SharesNoBits, selected 15 (3, 3), 1 matches", lines[0])
	assert.Equal(t, "(0, 0)", lines[5])

	out, err = run(t, "-d", "8", "classify", "-i", "0", "-s", "within-sequence", "-r", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "WithinSequence(2), selected 0 (0, 0), 3 matches")

	_, err = run(t, "-d", "4", "classify", "-s", "SharesNoBits")
	require.ErrorIs(t, err, errNoSelection)

	_, err = run(t, "-d", "4", "classify", "-i", "16")
	require.ErrorIs(t, err, neighbor.ErrNoSelection)

	_, err = run(t, "-d", "4", "classify", "-i", "0", "-l", "TopLevelParent")
	require.ErrorIs(t, err, morton.ErrInvalidLevel)

	_, err = run(t, "-d", "6", "order")
	require.ErrorIs(t, err, grid.ErrDimension)
}

func TestApp_cycle(t *testing.T) {
	out, err := run(t, "-d", "16", "cycle", "-i", "0")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "selected 0 (0, 0)"))
	assert.Contains(t, out, "SharesBitsAt(SecondLevelParent), selected 0 (0, 0), 64 matches")
}

func TestApp_smallGrids(t *testing.T) {
	out, err := run(t, "-d", "2", "cycle", "-i", "3")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "selected"))
	assert.Contains(t, out, "#2 SharesNoBits, selected 3 (1, 1), 1 matches")

	out, err = run(t, "-d", "1", "order")
	require.NoError(t, err)
	assert.Equal(t, "0  (0, 0)  0  []\n# curve of 0 px on a 60x60 px canvas\n", out)
}

func TestApp_wkt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zgrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dim: 8\nlayout:\n  cellSize: 10\n  padding: 2\n  maxWktLen: 40\n"), 0o600))

	out, err := run(t, "--config", path, "wkt", "--quadrants", "WholeGrid", "--quadrants", "TopLevelParent", "-i", "0")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	// cells, curve, quadrants, ancestry, highlights
	require.Len(t, lines, 64+1+4+16+2+16)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 40)
	}
	assert.True(t, strings.HasPrefix(lines[64], "LINESTRING"))

	out, err = run(t, "-d", "4", "wkt", "--centers")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 16+1+16)
	assert.True(t, strings.HasPrefix(lines[17], "POINT"))

	_, err = run(t, "--config", path, "wkt", "--quadrants", "Deepest")
	require.ErrorIs(t, err, morton.ErrInvalidLevel)
}
