package console

import (
	"fmt"
	"io"
	"strings"

	mb "github.com/saeidalz13/battleships/models/battleship"
)

// PrintGrid draws g the way its owner's opponent currently sees it,
// or the owner itself if the grid is revealed.
func PrintGrid(w io.Writer, g *mb.Grid, name string) {
	printGrid(w, g, name, false)
}

// PrintEndGrid draws g with every ship shown, for the end of a match.
func PrintEndGrid(w io.Writer, g *mb.Grid, name string) {
	printGrid(w, g, name, true)
}

func printGrid(w io.Writer, g *mb.Grid, name string, end bool) {
	size := g.Size()
	var sb strings.Builder

	eqs := strings.Repeat("=", max((size*2+3-len(name))/2-1, 0))
	fmt.Fprintf(&sb, "%s %s %s\n", eqs, name, eqs)
	writeIndices(&sb, size)
	writeSeparator(&sb, size)

	for x := 0; x < size; x++ {
		label := rune('A' + x)
		sb.WriteRune(label)
		for y := 0; y < size; y++ {
			c := mb.NewCoordinates(x, y)
			symbol := g.SymbolAt(c)
			if end {
				symbol = g.TypeAt(c).Symbol()
			}
			sb.WriteByte('|')
			sb.WriteRune(symbol)
		}
		sb.WriteByte('|')
		sb.WriteRune(label)
		sb.WriteByte('\n')
	}

	writeSeparator(&sb, size)
	writeIndices(&sb, size)

	io.WriteString(w, sb.String())
}

func writeSeparator(sb *strings.Builder, size int) {
	sb.WriteString(" +")
	sb.WriteString(strings.Repeat("-+", size))
	sb.WriteByte('\n')
}

// Column indices go under the cells. Grids wider than ten columns get
// an extra line of tens digits so that every column stays one wide.
func writeIndices(sb *strings.Builder, size int) {
	if size > 10 {
		sb.WriteString("  ")
		for i := 0; i < size; i++ {
			if i < 10 {
				sb.WriteString("  ")
				continue
			}
			fmt.Fprintf(sb, "%d ", i/10)
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("  ")
	for i := 0; i < size; i++ {
		fmt.Fprintf(sb, "%d ", i%10)
	}
	sb.WriteByte('\n')
}
