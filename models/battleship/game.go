package battleship

import (
	"time"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleships/internal/error"
)

const (
	GameDifficultyEasy uint8 = iota
	GameDifficultyNormal
	GameDifficultyHard
)

const (
	GridSizeEasy   int = 10
	GridSizeNormal int = 12
	GridSizeHard   int = 14
)

// Smallest grid the fleet reliably fits on with the spacing rules,
// largest grid that still has a letter for every row.
const (
	MinGridSize int = 10
	MaxGridSize int = 26
)

// Game holds the two grids of one match. Player 0 shoots at grid 1
// and player 1 shoots at grid 0.
type Game struct {
	uuid        string
	gridSize    int
	grids       [2]*Grid
	isPopulated bool
	isFinished  bool
	shotsFired  int
	createdAt   time.Time
}

// NewGame creates a game with two empty grids. viewer is the player
// whose own grid shows its ships; pass -1 to keep both grids hidden.
func NewGame(gridSize int, viewer int) (*Game, error) {
	if gridSize < MinGridSize || gridSize > MaxGridSize {
		return nil, cerr.ErrGridSize(gridSize, MinGridSize, MaxGridSize)
	}

	return &Game{
		uuid:     uuid.NewString()[:6],
		gridSize: gridSize,
		grids: [2]*Grid{
			NewGrid(gridSize, viewer == PlayerOne),
			NewGrid(gridSize, viewer == PlayerTwo),
		},
		createdAt: time.Now(),
	}, nil
}

func GridSizeForDifficulty(difficulty uint8) (int, error) {
	switch difficulty {
	case GameDifficultyEasy:
		return GridSizeEasy, nil
	case GameDifficultyNormal:
		return GridSizeNormal, nil
	case GameDifficultyHard:
		return GridSizeHard, nil
	default:
		return 0, cerr.ErrDifficulty(difficulty)
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) GridSize() int {
	return g.gridSize
}

func (g *Game) CreatedAt() time.Time {
	return g.createdAt
}

func (g *Game) ShotsFired() int {
	return g.shotsFired
}

func (g *Game) IsFinished() bool {
	return g.isFinished
}

func (g *Game) FinishGame() {
	g.isFinished = true
}

// Grid returns the grid owned by playerNumber.
func (g *Game) Grid(playerNumber int) (*Grid, error) {
	if !isValidPlayerNumber(playerNumber) {
		return nil, cerr.ErrPlayerNumber(playerNumber)
	}
	return g.grids[playerNumber], nil
}

// PopulateGrids runs the placement phase for both players, player 0
// first. Grids are populated once per game.
func (g *Game) PopulateGrids(players [2]Player) error {
	if g.isPopulated {
		return cerr.ErrGridsAlreadyPopulated
	}

	for i, player := range players {
		if err := NewFleetPlacer(g.grids[i], player).PlaceFleet(); err != nil {
			return err
		}
	}

	g.isPopulated = true
	return nil
}

// IsValid reports whether playerNumber may shoot at c on the opponent's grid.
func (g *Game) IsValid(c Coordinates, playerNumber int) (bool, error) {
	if !isValidPlayerNumber(playerNumber) {
		return false, cerr.ErrPlayerNumber(playerNumber)
	}
	return g.grids[Opponent(playerNumber)].IsShootable(c)
}

// Shoot fires playerNumber's shot at the opponent's grid. Out of bound
// and already shot positions, and any shot once the game is over, are
// rejected without changing any state.
func (g *Game) Shoot(c Coordinates, playerNumber int) (ShotResult, error) {
	if _, won := g.Winner(); won || g.isFinished {
		return ShotMiss, cerr.ErrGameOver
	}

	shootable, err := g.IsValid(c, playerNumber)
	if err != nil {
		return ShotMiss, err
	}
	if !shootable {
		return ShotMiss, cerr.ErrAttackPositionAlreadyFilled(c.X, c.Y)
	}

	g.shotsFired++
	return g.grids[Opponent(playerNumber)].Shoot(c), nil
}

// Winner returns the player who has destroyed the opponent's whole fleet.
func (g *Game) Winner() (int, bool) {
	for i, grid := range g.grids {
		if grid.HitCount() == TotalShipCells {
			return Opponent(i), true
		}
	}
	return -1, false
}
