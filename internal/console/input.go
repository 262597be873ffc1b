package console

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strconv"

	mb "github.com/saeidalz13/battleships/models/battleship"
)

const wrongFormatMsg = "Please use the following format for a coordinate: A1"

// A row letter followed by a column number, e.g. "C3"
var coordinatesRegex = regexp.MustCompile(`[a-zA-Z][0-9]+`)

// LineReader is the source of user input lines. *readline.Instance
// satisfies it for interactive play.
type LineReader interface {
	Readline() (string, error)
}

type scannerReader struct {
	scanner *bufio.Scanner
}

// NewScannerReader reads lines from r, e.g. a file of scripted moves.
func NewScannerReader(r io.Reader) LineReader {
	return &scannerReader{scanner: bufio.NewScanner(r)}
}

func (s *scannerReader) Readline() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// FallbackReader drains primary first and continues on fallback once
// primary is exhausted.
type FallbackReader struct {
	primary  LineReader
	fallback LineReader
}

var _ LineReader = (*FallbackReader)(nil)

func NewFallbackReader(primary, fallback LineReader) *FallbackReader {
	return &FallbackReader{primary: primary, fallback: fallback}
}

func (f *FallbackReader) Readline() (string, error) {
	if f.primary != nil {
		line, err := f.primary.Readline()
		if err == nil {
			return line, nil
		}
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		f.primary = nil
	}
	return f.fallback.Readline()
}

// parseCoordinates returns every coordinate found in line, in order.
// Column numbers too large for an int are skipped.
func parseCoordinates(line string) []mb.Coordinates {
	matches := coordinatesRegex.FindAllString(line, -1)
	coords := make([]mb.Coordinates, 0, len(matches))
	for _, match := range matches {
		col, err := strconv.Atoi(match[1:])
		if err != nil {
			continue
		}
		coords = append(coords, mb.NewCoordinatesFromLabel(rune(match[0]), col))
	}
	return coords
}
