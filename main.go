package main

import (
	"log"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/iancoleman/strcase"
	"github.com/urfave/cli/v2"
)

const CONFIG string = `config`
const DIM string = `dim`
const VERBOSE string = `verbose`

const X string = `x`
const Y string = `y`
const INDEX string = `index`
const STRATEGY string = `strategy`
const LEVEL string = `level`
const RADIUS string = `radius`
const QUADRANTS string = `quadrants`
const CENTERS string = `centers`

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

//nolint:funlen
func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "zgrid"
	app.Usage = "Order a square grid along the Z-order curve and classify neighbors by their codes"
	app.Version = versioninfo.Short()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:     CONFIG,
			Aliases:  []string{"c"},
			Usage:    "Config file (.json, .yaml or .yml)",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake("zgrid " + CONFIG)},
		},
		&cli.UintFlag{
			Name:     DIM,
			Aliases:  []string{"d"},
			Usage:    "Cells on one side of the grid, a power of two. Overrides the config file",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake("zgrid " + DIM)},
		},
		&cli.BoolFlag{
			Name:     VERBOSE,
			Usage:    "Log every event",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake("zgrid " + VERBOSE)},
		},
	}

	selectionFlags := []cli.Flag{
		&cli.UintFlag{Name: X, Usage: "Column of the selected cell, together with --y"},
		&cli.UintFlag{Name: Y, Usage: "Row of the selected cell, together with --x"},
		&cli.IntFlag{Name: INDEX, Aliases: []string{"i"}, Usage: "Position of the selected cell in curve order"},
	}
	strategyFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    STRATEGY,
			Aliases: []string{"s"},
			Usage:   `Strategy name, or its full form. E.g.: SharesNoBits, "SharesAncestryThrough(TopLevelParent)"`,
			Value:   "SharesBitsAt",
		},
		&cli.StringFlag{Name: LEVEL, Aliases: []string{"l"}, Usage: "Level for SharesBitsAt and SharesAncestryThrough", Value: "WholeGrid"},
		&cli.UintFlag{Name: RADIUS, Aliases: []string{"r"}, Usage: "Radius for WithinSequence. Defaults to the configured window"},
	}

	app.Commands = []*cli.Command{
		{
			Name:   "order",
			Usage:  "Print the cells in curve order with their codes and groups",
			Action: orderAction,
		},
		{
			Name:   "classify",
			Usage:  "Print the board with the cells that match the selected cell",
			Flags:  append(append([]cli.Flag{}, selectionFlags...), strategyFlags...),
			Action: classifyAction,
		},
		{
			Name:   "cycle",
			Usage:  "Print a board for every strategy of the cycle",
			Flags:  selectionFlags,
			Action: cycleAction,
		},
		{
			Name:  "wkt",
			Usage: "Print cells, curve and highlights as WKT",
			Flags: append(append(append([]cli.Flag{}, selectionFlags...), strategyFlags...),
				&cli.StringSliceFlag{Name: QUADRANTS, Aliases: []string{"q"}, Usage: "Levels to draw quadrant outlines for"},
				&cli.BoolFlag{Name: CENTERS, Usage: "Also draw the cell centers the curve passes through"}),
			Action: wktAction,
		},
		{
			Name:   "play",
			Usage:  "Read commands from stdin: n (next strategy), x y (select cell), i N (select index), s STRATEGY, c (clear), q (quit)",
			Action: playAction,
		},
	}
	return app
}
