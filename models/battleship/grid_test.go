package battleship

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/battleships/internal/error"
)

func countShipCells(g *Grid) int {
	count := 0
	for x := 0; x < g.Size(); x++ {
		for y := 0; y < g.Size(); y++ {
			if !g.TypeAt(NewCoordinates(x, y)).IsWater() {
				count++
			}
		}
	}
	return count
}

func countHitShipCells(g *Grid) int {
	count := 0
	for x := 0; x < g.Size(); x++ {
		for y := 0; y < g.Size(); y++ {
			c := NewCoordinates(x, y)
			if !g.TypeAt(c).IsWater() && g.IsShotAt(c) {
				count++
			}
		}
	}
	return count
}

func permutations(coords []Coordinates) [][]Coordinates {
	if len(coords) <= 1 {
		return [][]Coordinates{append([]Coordinates(nil), coords...)}
	}

	var res [][]Coordinates
	for i := range coords {
		rest := make([]Coordinates, 0, len(coords)-1)
		rest = append(rest, coords[:i]...)
		rest = append(rest, coords[i+1:]...)
		for _, p := range permutations(rest) {
			res = append(res, append([]Coordinates{coords[i]}, p...))
		}
	}
	return res
}

func TestCoordinatesFromLabel(t *testing.T) {
	tests := []struct {
		name     string
		row      rune
		col      int
		expected Coordinates
	}{
		{name: "upper case", row: 'C', col: 3, expected: NewCoordinates(2, 3)},
		{name: "lower case", row: 'c', col: 3, expected: NewCoordinates(2, 3)},
		{name: "first row", row: 'A', col: 0, expected: NewCoordinates(0, 0)},
		{name: "last row of default grid", row: 'j', col: 9, expected: NewCoordinates(9, 9)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, NewCoordinatesFromLabel(test.row, test.col))
		})
	}

	require.Equal(t, "C3", NewCoordinates(2, 3).Label())
}

func TestCoordinatesDistance(t *testing.T) {
	require.Equal(t, 0, NewCoordinates(4, 4).Distance(NewCoordinates(4, 4)))
	require.Equal(t, 3, NewCoordinates(0, 0).Distance(NewCoordinates(0, 3)))
	require.Equal(t, 3, NewCoordinates(0, 3).Distance(NewCoordinates(0, 0)))
	require.Equal(t, 7, NewCoordinates(1, 5).Distance(NewCoordinates(4, 1)))
}

func TestPlaceShipScenario(t *testing.T) {
	g := NewGrid(10, true)
	require.NoError(t, g.PlaceShip(NewCoordinates(0, 0), NewCoordinates(0, 3), ShipKindBattleship))

	tests := []struct {
		name        string
		from        Coordinates
		to          Coordinates
		expectedErr error
	}{
		{name: "touching end to end", from: NewCoordinates(0, 4), to: NewCoordinates(0, 7), expectedErr: cerr.ErrShipCollision},
		{name: "diagonal contact at tip", from: NewCoordinates(1, 4), to: NewCoordinates(1, 7), expectedErr: cerr.ErrShipCollision},
		{name: "two clear cells of separation", from: NewCoordinates(2, 4), to: NewCoordinates(2, 7)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := g.PlaceShip(test.from, test.to, ShipKindBattleship)
			if test.expectedErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, test.expectedErr)
		})
	}

	require.Equal(t, 8, countShipCells(g))
}

func TestPlaceShipCollisions(t *testing.T) {
	tests := []struct {
		name string
		from Coordinates
		to   Coordinates
	}{
		{name: "exact same position", from: NewCoordinates(4, 3), to: NewCoordinates(4, 5)},
		{name: "same position reversed endpoints", from: NewCoordinates(4, 5), to: NewCoordinates(4, 3)},
		{name: "crossing", from: NewCoordinates(3, 4), to: NewCoordinates(5, 4)},
		{name: "inside the ship", from: NewCoordinates(4, 4), to: NewCoordinates(4, 5)},
		{name: "parallel above", from: NewCoordinates(3, 3), to: NewCoordinates(3, 5)},
		{name: "parallel below shifted", from: NewCoordinates(5, 5), to: NewCoordinates(5, 7)},
		{name: "perpendicular touching the side", from: NewCoordinates(5, 4), to: NewCoordinates(7, 4)},
		{name: "diagonal at lower tip", from: NewCoordinates(5, 0), to: NewCoordinates(5, 2)},
		{name: "diagonal at upper tip", from: NewCoordinates(1, 6), to: NewCoordinates(3, 6)},
		{name: "in line after the tip", from: NewCoordinates(4, 6), to: NewCoordinates(4, 8)},
		{name: "in line before the tip", from: NewCoordinates(4, 0), to: NewCoordinates(4, 2)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := NewGrid(10, false)
			require.NoError(t, g.PlaceShip(NewCoordinates(4, 3), NewCoordinates(4, 5), ShipKindSubmarine))

			err := g.PlaceShip(test.from, test.to, ShipKindSubmarine)
			require.True(t, errors.Is(err, cerr.ErrShipCollision), "expected collision, got: %v", err)

			// all or nothing
			require.Equal(t, 3, countShipCells(g))
			for _, c := range []Coordinates{test.from, test.to} {
				if c.X == 4 && c.Y >= 3 && c.Y <= 5 {
					continue
				}
				require.True(t, g.TypeAt(c).IsWater(), "cell %s must stay water", c)
			}
		})
	}
}

func TestPlaceShipAllowedPositions(t *testing.T) {
	tests := []struct {
		name string
		from Coordinates
		to   Coordinates
	}{
		{name: "one gap diagonal from the tip", from: NewCoordinates(6, 6), to: NewCoordinates(8, 6)},
		{name: "one row gap parallel", from: NewCoordinates(2, 3), to: NewCoordinates(2, 5)},
		{name: "one cell gap in line", from: NewCoordinates(4, 7), to: NewCoordinates(4, 9)},
		{name: "corner of the grid", from: NewCoordinates(9, 9), to: NewCoordinates(7, 9)},
		{name: "top left corner", from: NewCoordinates(0, 0), to: NewCoordinates(0, 2)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := NewGrid(10, false)
			require.NoError(t, g.PlaceShip(NewCoordinates(4, 3), NewCoordinates(4, 5), ShipKindSubmarine))
			require.NoError(t, g.PlaceShip(test.from, test.to, ShipKindSubmarine))
			require.Equal(t, 6, countShipCells(g))
		})
	}
}

func TestPlaceShipSymbols(t *testing.T) {
	revealed := NewGrid(10, true)
	hidden := NewGrid(10, false)

	for _, g := range []*Grid{revealed, hidden} {
		require.NoError(t, g.PlaceShip(NewCoordinates(2, 2), NewCoordinates(5, 2), ShipKindBattleship))
	}

	for x := 2; x <= 5; x++ {
		c := NewCoordinates(x, 2)
		require.Equal(t, ShipKindBattleship, revealed.TypeAt(c))
		require.Equal(t, ShipKindBattleship, hidden.TypeAt(c))
		require.Equal(t, 'B', revealed.SymbolAt(c))
		require.Equal(t, SymbolBlank, hidden.SymbolAt(c))
	}
}

func TestShootSunkOrderIndependent(t *testing.T) {
	ship := []Coordinates{
		NewCoordinates(0, 0),
		NewCoordinates(0, 1),
		NewCoordinates(0, 2),
		NewCoordinates(0, 3),
	}

	for _, order := range permutations(ship) {
		g := NewGrid(10, false)
		require.NoError(t, g.PlaceShip(NewCoordinates(0, 0), NewCoordinates(0, 3), ShipKindBattleship))

		for i, c := range order {
			result := g.Shoot(c)
			if i < len(order)-1 {
				require.Equal(t, ShotHit, result, "order %v shot %d", order, i)
				require.Equal(t, SymbolHit, g.SymbolAt(c))
			} else {
				require.Equal(t, ShotHitAndSunk, result, "order %v", order)
			}
		}

		for _, c := range ship {
			require.Equal(t, 'B', g.SymbolAt(c))
		}
		require.Equal(t, 4, g.HitCount())
	}
}

func TestShootMiss(t *testing.T) {
	g := NewGrid(10, false)
	require.NoError(t, g.PlaceShip(NewCoordinates(0, 0), NewCoordinates(1, 0), ShipKindPatrolBoat))

	c := NewCoordinates(5, 5)
	require.Equal(t, ShotMiss, g.Shoot(c))
	require.Equal(t, SymbolMiss, g.SymbolAt(c))
	require.Equal(t, 0, g.HitCount())

	shootable, err := g.IsShootable(c)
	require.NoError(t, err)
	require.False(t, shootable)
}

func TestShootTwicePanics(t *testing.T) {
	g := NewGrid(10, false)
	c := NewCoordinates(3, 3)
	g.Shoot(c)
	require.Panics(t, func() { g.Shoot(c) })
}

func TestIsShootable(t *testing.T) {
	g := NewGrid(10, false)

	tests := []struct {
		name        string
		c           Coordinates
		expected    bool
		expectedErr error
	}{
		{name: "inside", c: NewCoordinates(0, 0), expected: true},
		{name: "last cell", c: NewCoordinates(9, 9), expected: true},
		{name: "negative x", c: NewCoordinates(-1, 0), expectedErr: cerr.ErrOutOfBounds},
		{name: "negative y", c: NewCoordinates(0, -1), expectedErr: cerr.ErrOutOfBounds},
		{name: "x too big", c: NewCoordinates(10, 0), expectedErr: cerr.ErrOutOfBounds},
		{name: "y too big", c: NewCoordinates(0, 10), expectedErr: cerr.ErrOutOfBounds},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			shootable, err := g.IsShootable(test.c)
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expected, shootable)
		})
	}
}

func TestSegmentDiscovery(t *testing.T) {
	g := NewGrid(10, false)
	cpu := NewCpuPlayer(PlayerTwo, 10, 7)
	require.NoError(t, NewFleetPlacer(g, cpu).PlaceFleet())

	for x := 0; x < g.Size(); x++ {
		for y := 0; y < g.Size(); y++ {
			c := NewCoordinates(x, y)
			kind := g.TypeAt(c)
			if kind.IsWater() {
				_, err := g.segment(c)
				require.ErrorIs(t, err, cerr.ErrNotShipCell)
				continue
			}

			segment, err := g.segment(c)
			require.NoError(t, err)
			require.Len(t, segment, kind.Length())
			require.Contains(t, segment, c)

			for i, sc := range segment {
				require.Equal(t, kind, g.TypeAt(sc))
				if i > 0 {
					require.Equal(t, 1, sc.Distance(segment[i-1]))
					require.True(t, sc.IsCollinear(segment[0]))
				}
			}
		}
	}

	_, err := g.segment(NewCoordinates(10, 0))
	require.ErrorIs(t, err, cerr.ErrOutOfBounds)
}

func TestHitCountInvariant(t *testing.T) {
	g := NewGrid(10, false)
	require.NoError(t, NewFleetPlacer(g, NewCpuPlayer(PlayerTwo, 10, 11)).PlaceFleet())
	require.Equal(t, TotalShipCells, countShipCells(g))

	shooter := NewCpuPlayer(PlayerOne, 10, 12)
	previous := 0
	for i := 0; i < 100; i++ {
		c, err := shooter.NextShot()
		require.NoError(t, err)

		shootable, err := g.IsShootable(c)
		require.NoError(t, err)
		require.True(t, shootable)

		result := g.Shoot(c)
		require.GreaterOrEqual(t, g.HitCount(), previous)
		require.Equal(t, countHitShipCells(g), g.HitCount())
		previous = g.HitCount()

		shootable, _ = g.IsShootable(c)
		require.False(t, shootable)

		if result == ShotHitAndSunk {
			segment, err := g.segment(c)
			require.NoError(t, err)
			for _, sc := range segment {
				require.True(t, g.IsShotAt(sc))
				require.Equal(t, g.TypeAt(sc).Symbol(), g.SymbolAt(sc))
			}
		}
		if result == ShotHit {
			segment, err := g.segment(c)
			require.NoError(t, err)
			allShot := true
			for _, sc := range segment {
				allShot = allShot && g.IsShotAt(sc)
			}
			require.False(t, allShot)
		}
	}

	require.Equal(t, TotalShipCells, g.HitCount())
}
