package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdok/zgrid/grid"
	"github.com/pdok/zgrid/morton"
	"github.com/pdok/zgrid/neighbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, Config{
		Dim:    8,
		Window: 4,
		Layout: Layout{CellSize: 60, Padding: 6},
	}, c)
	require.NoError(t, c.Validate())

	g, err := c.Grid()
	require.NoError(t, err)
	cycle, err := c.StrategyCycle(g)
	require.NoError(t, err)
	assert.Equal(t, 3, cycle.Len())
}

func TestConfig_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		want    Config
		wantErr bool
	}{
		{
			name: "empty object gets defaults",
			json: `{}`,
			want: Default(),
		},
		{
			name: "partial layout",
			json: `{"dim": 16, "layout": {"cellSize": 60, "padding": 0}}`,
			want: Config{Dim: 16, Window: 4, Layout: Layout{CellSize: 60, Padding: 0}},
		},
		{
			name: "cycle",
			json: `{"dim": 16, "cycle": ["SharesBitsAt(SecondLevelParent)", "SharesNoBits"], "window": 2}`,
			want: Config{
				Dim:    16,
				Cycle:  []string{"SharesBitsAt(SecondLevelParent)", "SharesNoBits"},
				Window: 2,
				Layout: Layout{CellSize: 60, Padding: 6},
			},
		},
		{name: "unknown key", json: `{"dim": 8, "colour": "blue"}`, wantErr: true},
		{name: "not a power of two", json: `{"dim": 12}`, wantErr: true},
		{name: "level too deep for 8x8", json: `{"cycle": ["SharesBitsAt(SecondLevelParent)"]}`, wantErr: true},
		{name: "unknown strategy", json: `{"cycle": ["Nearest"]}`, wantErr: true},
		{name: "empty strategy", json: `{"cycle": [""]}`, wantErr: true},
		{name: "negative padding", json: `{"layout": {"padding": -1}}`, wantErr: true},
		{name: "wrong type", json: `{"dim": "eight"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Config
			err := json.Unmarshal([]byte(tt.json), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_StrategyCycle(t *testing.T) {
	c := Config{Dim: 16, Cycle: []string{"shares-no-bits", "within-sequence(3)"}}
	g := grid.MustNew(16)
	cycle, err := c.StrategyCycle(g)
	require.NoError(t, err)
	assert.Equal(t, []neighbor.Strategy{neighbor.NoBits(), neighbor.Window(3)}, cycle.Steps())

	c.Cycle = []string{"SharesAncestryThrough(SecondLevelParent)"}
	_, err = c.StrategyCycle(grid.MustNew(8))
	require.ErrorIs(t, err, morton.ErrInvalidLevel)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	c, err := Load(write("zgrid.json", `{"dim": 4}`))
	require.NoError(t, err)
	assert.Equal(t, uint(4), c.Dim)
	assert.Equal(t, int64(60), c.Layout.CellSize)

	c, err = Load(write("zgrid.yaml", "dim: 16\nlayout:\n  cellSize: 10\n  padding: 6\ncycle:\n  - SharesBitsAt(WholeGrid)\n"))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Dim:    16,
		Cycle:  []string{"SharesBitsAt(WholeGrid)"},
		Window: 4,
		Layout: Layout{CellSize: 10, Padding: 6},
	}, c)

	c, err = Load(write("empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = Load(write("bad.yaml", "dim: 3\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(write("zgrid.toml", "dim = 8"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
