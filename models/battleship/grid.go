package battleship

import (
	"fmt"
	"unicode"

	cerr "github.com/saeidalz13/battleships/internal/error"
)

const (
	SymbolBlank rune = ' '
	SymbolHit   rune = 'X'
	SymbolMiss  rune = 'O'
)

type ShotResult uint8

const (
	ShotMiss ShotResult = iota
	ShotHit
	ShotHitAndSunk
)

func (r ShotResult) String() string {
	switch r {
	case ShotMiss:
		return "miss"
	case ShotHit:
		return "hit"
	case ShotHitAndSunk:
		return "hit and sunk"
	default:
		return "unknown"
	}
}

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

// NewCoordinatesFromLabel maps a row letter (case-insensitive, A is row 0)
// and a column number to coordinates. ('C', 3) is (2, 3).
func NewCoordinatesFromLabel(row rune, col int) Coordinates {
	return Coordinates{X: int(unicode.ToUpper(row) - 'A'), Y: col}
}

// Distance returns the Manhattan distance between c and other.
func (c Coordinates) Distance(other Coordinates) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func (c Coordinates) IsCollinear(other Coordinates) bool {
	return c.X == other.X || c.Y == other.Y
}

// Label is the textual form used by the console, e.g. "C3".
func (c Coordinates) Label() string {
	return fmt.Sprintf("%c%d", rune('A'+c.X), c.Y)
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

func (c Coordinates) translate(dx, dy int) Coordinates {
	return Coordinates{X: c.X + dx, Y: c.Y + dy}
}

type Cell struct {
	kind   ShipKind
	symbol rune
	shot   bool
}

func newCell() Cell {
	return Cell{kind: ShipKindWater, symbol: SymbolBlank}
}

// Grid is a square board of cells owned by one player.
// When revealed is set, placed ships are drawn with their symbol
// (the viewing player's own grid); otherwise they stay blank until sunk.
type Grid struct {
	cells    [][]Cell
	hitCount int
	revealed bool
}

// Creates a new grid where every cell is unshot water.
func NewGrid(gridSize int, revealed bool) *Grid {
	cells := make([][]Cell, gridSize)
	for i := 0; i < gridSize; i++ {
		cells[i] = make([]Cell, gridSize)
		for j := 0; j < gridSize; j++ {
			cells[i][j] = newCell()
		}
	}

	return &Grid{cells: cells, revealed: revealed}
}

func (g *Grid) Size() int {
	return len(g.cells)
}

// HitCount is the number of non-water cells shot so far.
func (g *Grid) HitCount() int {
	return g.hitCount
}

func (g *Grid) IsRevealed() bool {
	return g.revealed
}

func (g *Grid) TypeAt(c Coordinates) ShipKind {
	return g.cells[c.X][c.Y].kind
}

func (g *Grid) SymbolAt(c Coordinates) rune {
	return g.cells[c.X][c.Y].symbol
}

func (g *Grid) IsShotAt(c Coordinates) bool {
	return g.cells[c.X][c.Y].shot
}

func (g *Grid) InBounds(c Coordinates) bool {
	return c.X >= 0 && c.X < len(g.cells) && c.Y >= 0 && c.Y < len(g.cells)
}

// IsShootable reports whether c has not been shot yet.
func (g *Grid) IsShootable(c Coordinates) (bool, error) {
	if !g.InBounds(c) {
		return false, cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}
	return !g.cells[c.X][c.Y].shot, nil
}

func (g *Grid) cell(c Coordinates) *Cell {
	return &g.cells[c.X][c.Y]
}

// Cells outside the grid count as water.
func (g *Grid) isWater(c Coordinates) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.cells[c.X][c.Y].kind.IsWater()
}

// Unit step from the lower endpoint towards the higher one.
// Ships with equal x run along y.
func shipStep(from, to Coordinates) Coordinates {
	if from.X == to.X {
		return Coordinates{X: 0, Y: 1}
	}
	return Coordinates{X: 1, Y: 0}
}

func lowerEndpoint(from, to Coordinates) Coordinates {
	return Coordinates{X: min(from.X, to.X), Y: min(from.Y, to.Y)}
}

// PlaceShip puts a ship of the given kind on the segment between from
// and to. The caller has already checked that both endpoints lie on
// the grid, share a row or a column and span kind.Length() cells.
//
// No other ship may overlap the segment or touch it, orthogonally or
// diagonally, including at its two tips. On error the grid is left
// unchanged.
func (g *Grid) PlaceShip(from, to Coordinates, kind ShipKind) error {
	if !g.InBounds(from) {
		return cerr.ErrXorYOutOfGridBound(from.X, from.Y)
	}
	if !g.InBounds(to) {
		return cerr.ErrXorYOutOfGridBound(to.X, to.Y)
	}

	step := shipStep(from, to)
	side := Coordinates{X: step.Y, Y: step.X}
	length := from.Distance(to) + 1
	start := lowerEndpoint(from, to)
	end := start.translate(step.X*(length-1), step.Y*(length-1))

	endCaps := []Coordinates{
		start.translate(-step.X, -step.Y),
		end.translate(step.X, step.Y),
	}
	for _, c := range endCaps {
		if !g.isWater(c) || !g.isWater(c.translate(side.X, side.Y)) || !g.isWater(c.translate(-side.X, -side.Y)) {
			return cerr.ErrShipCollides(kind.Name())
		}
	}

	segment := make([]Coordinates, length)
	for i := range segment {
		c := start.translate(step.X*i, step.Y*i)
		if !g.isWater(c) || !g.isWater(c.translate(side.X, side.Y)) || !g.isWater(c.translate(-side.X, -side.Y)) {
			return cerr.ErrShipCollides(kind.Name())
		}
		segment[i] = c
	}

	symbol := SymbolBlank
	if g.revealed {
		symbol = kind.Symbol()
	}
	for _, c := range segment {
		cell := g.cell(c)
		cell.kind = kind
		cell.symbol = symbol
	}
	return nil
}

// Shoot fires at c and reports the outcome. c must be shootable;
// shooting a cell twice is a caller bug and panics.
func (g *Grid) Shoot(c Coordinates) ShotResult {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("shoot out of grid bound at %s", c))
	}

	cell := g.cell(c)
	if cell.shot {
		panic(fmt.Sprintf("position %s already shot; check IsShootable before shooting", c))
	}
	cell.shot = true

	if cell.kind.IsWater() {
		cell.symbol = SymbolMiss
		return ShotMiss
	}

	cell.symbol = SymbolHit
	g.hitCount++

	segment, err := g.segment(c)
	if err != nil {
		// cell holds a ship, so this never happens
		panic(err)
	}

	for _, sc := range segment {
		if !g.cell(sc).shot {
			return ShotHit
		}
	}

	// Sunk ships are revealed on every grid, overwriting the hit markers
	for _, sc := range segment {
		g.cell(sc).symbol = cell.kind.Symbol()
	}
	return ShotHitAndSunk
}

// segment returns the cells of the ship occupying c, from its
// lowest-indexed cell onwards.
func (g *Grid) segment(c Coordinates) ([]Coordinates, error) {
	if !g.InBounds(c) {
		return nil, cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}
	kind := g.TypeAt(c)
	if kind.IsWater() {
		return nil, cerr.ErrPositionNotShip(c.X, c.Y)
	}

	step := Coordinates{X: 0, Y: 1}
	if !g.isWater(c.translate(-1, 0)) || !g.isWater(c.translate(1, 0)) {
		step = Coordinates{X: 1, Y: 0}
	}

	start := c
	for prev := c.translate(-step.X, -step.Y); !g.isWater(prev); prev = prev.translate(-step.X, -step.Y) {
		start = prev
	}

	coords := make([]Coordinates, kind.Length())
	for i := range coords {
		coords[i] = start.translate(step.X*i, step.Y*i)
	}
	return coords, nil
}
