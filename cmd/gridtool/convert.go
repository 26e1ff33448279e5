package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/decker502/hophop/pkg/grid"
)

var pixelCmd = &cobra.Command{
	Use:   "pixel <coord>...",
	Short: "Convert coordinates to cell-centre pixels",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printPixels(cmd.OutOrStdout(), activeGrid, args)
	},
}

var coordCmd = &cobra.Command{
	Use:   "coord <x> <y>",
	Short: "Convert a pixel position to the cell containing it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("x %q: %w", args[0], err)
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("y %q: %w", args[1], err)
		}
		return printCoord(cmd.OutOrStdout(), activeGrid, x, y)
	},
}

var spanCmd = &cobra.Command{
	Use:   "span <start> <end>",
	Short: "Show the centre and size of the rectangle two corners cover",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSpan(cmd.OutOrStdout(), activeGrid, args[0], args[1])
	},
}

var cellsCmd = &cobra.Command{
	Use:   "cells <start> <end>",
	Short: "List every cell inside a span (row-major)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCells(cmd.OutOrStdout(), activeGrid, args[0], args[1])
	},
}

// printPixels 逐个换算，遇到非法坐标立即返回错误
func printPixels(w io.Writer, g *grid.Grid, coords []string) error {
	for _, text := range coords {
		p, err := g.ToPixel(text)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t(%g, %g)\n", text, p.X, p.Y)
	}
	return nil
}

func printCoord(w io.Writer, g *grid.Grid, x, y float64) error {
	c, ok := g.ToCoordinate(x, y)
	if !ok {
		return fmt.Errorf("(%g, %g) is outside the %dx%d grid", x, y, g.Columns(), g.Rows())
	}
	fmt.Fprintln(w, c)
	return nil
}

func printSpan(w io.Writer, g *grid.Grid, start, end string) error {
	s, err := g.Span(start, end)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s-%s\tcentre (%g, %g)\tsize %gx%g\tcells %dx%d\n",
		s.Start, s.End, s.Center.X, s.Center.Y, s.Width, s.Height, s.ColSpan, s.RowSpan)
	return nil
}

func printCells(w io.Writer, g *grid.Grid, start, end string) error {
	cells, err := g.CellsInSpan(start, end)
	if err != nil {
		return err
	}
	names := make([]string, len(cells))
	for i, c := range cells {
		names[i] = c.String()
	}
	fmt.Fprintln(w, strings.Join(names, " "))
	return nil
}
