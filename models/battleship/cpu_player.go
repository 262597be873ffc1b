package battleship

import (
	"errors"
	"math/rand/v2"

	cerr "github.com/saeidalz13/battleships/internal/error"
)

// Attempts to fit a single ship on the planning grid before the whole
// plan is thrown away and started again.
const maxShipPlacementAttempts = 200

var errNoShotsLeft = errors.New("cpu player has no unshot positions left")

type shipPlacement struct {
	from Coordinates
	to   Coordinates
}

// CpuPlayer is the automated move source. Its fleet is laid out up front
// on a scratch grid with the same rules the real grid enforces, so every
// placement it hands out is accepted. Shots come from a shuffled list of
// all positions, so it never fires twice at the same cell.
type CpuPlayer struct {
	number   int
	gridSize int
	rng      *rand.Rand
	plan     map[ShipKind][]shipPlacement
	shots    []Coordinates
}

var _ Player = (*CpuPlayer)(nil)
var _ RematchVoter = (*CpuPlayer)(nil)

func NewCpuPlayer(number, gridSize int, seed uint64) *CpuPlayer {
	return &CpuPlayer{
		number:   number,
		gridSize: gridSize,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (p *CpuPlayer) Number() int {
	return p.number
}

func (p *CpuPlayer) NextShipEndpoints(kind ShipKind) (Coordinates, Coordinates, error) {
	if err := p.checkGridSize(); err != nil {
		return Coordinates{}, Coordinates{}, err
	}
	if p.plan == nil {
		p.plan = p.planFleet()
	}

	queue := p.plan[kind]
	if len(queue) == 0 {
		// Asked for more ships than planned; a fresh plan covers the full fleet again
		p.plan = p.planFleet()
		queue = p.plan[kind]
	}

	next := queue[0]
	p.plan[kind] = queue[1:]
	return next.from, next.to, nil
}

func (p *CpuPlayer) NextShot() (Coordinates, error) {
	if err := p.checkGridSize(); err != nil {
		return Coordinates{}, err
	}
	if p.shots == nil {
		p.shots = make([]Coordinates, 0, p.gridSize*p.gridSize)
		for x := 0; x < p.gridSize; x++ {
			for y := 0; y < p.gridSize; y++ {
				p.shots = append(p.shots, NewCoordinates(x, y))
			}
		}
		p.rng.Shuffle(len(p.shots), func(i, j int) {
			p.shots[i], p.shots[j] = p.shots[j], p.shots[i]
		})
	}

	if len(p.shots) == 0 {
		return Coordinates{}, errNoShotsLeft
	}

	shot := p.shots[0]
	p.shots = p.shots[1:]
	return shot, nil
}

// The fleet only fits on grids a Game accepts.
func (p *CpuPlayer) checkGridSize() error {
	if p.gridSize < MinGridSize || p.gridSize > MaxGridSize {
		return cerr.ErrGridSize(p.gridSize, MinGridSize, MaxGridSize)
	}
	return nil
}

func (p *CpuPlayer) WantsRematch() (bool, error) {
	return true, nil
}

// Resets the per-match state so the same player can play a rematch.
func (p *CpuPlayer) Reset(gridSize int) {
	p.gridSize = gridSize
	p.plan = nil
	p.shots = nil
}

func (p *CpuPlayer) planFleet() map[ShipKind][]shipPlacement {
planLoop:
	for {
		scratch := NewGrid(p.gridSize, false)
		plan := make(map[ShipKind][]shipPlacement, len(Fleet()))

		for _, kind := range Fleet() {
			for i := 0; i < kind.Count(); i++ {
				placed := false
				for attempt := 0; attempt < maxShipPlacementAttempts; attempt++ {
					from, to := p.randomEndpoints(kind)
					if err := scratch.PlaceShip(from, to, kind); err != nil {
						continue
					}
					plan[kind] = append(plan[kind], shipPlacement{from: from, to: to})
					placed = true
					break
				}

				if !placed {
					continue planLoop
				}
			}
		}
		return plan
	}
}

func (p *CpuPlayer) randomEndpoints(kind ShipKind) (Coordinates, Coordinates) {
	span := kind.Length() - 1

	if p.rng.IntN(2) == 0 {
		from := NewCoordinates(p.rng.IntN(p.gridSize), p.rng.IntN(p.gridSize-span))
		return from, from.translate(0, span)
	}

	from := NewCoordinates(p.rng.IntN(p.gridSize-span), p.rng.IntN(p.gridSize))
	return from, from.translate(span, 0)
}
