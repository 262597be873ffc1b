package battleship

import (
	"sync"

	"github.com/dolthub/swiss"
	cerr "github.com/saeidalz13/battleships/internal/error"
)

type GameManager interface {
	CreateGame(difficulty uint8, viewer int) (*Game, error)
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	CountGames() int
}

type BattleshipGameManager struct {
	games *swiss.Map[string, *Game]
	mu    sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return &BattleshipGameManager{
		games: swiss.NewMap[string, *Game](4),
	}
}

func (bgm *BattleshipGameManager) CreateGame(difficulty uint8, viewer int) (*Game, error) {
	gridSize, err := GridSizeForDifficulty(difficulty)
	if err != nil {
		return nil, err
	}

	game, err := NewGame(gridSize, viewer)
	if err != nil {
		return nil, err
	}

	bgm.mu.Lock()
	bgm.games.Put(game.Uuid(), game)
	bgm.mu.Unlock()

	return game, nil
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games.Get(gameUuid)
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExistsUuid(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	bgm.games.Delete(gameUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) CountGames() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return bgm.games.Count()
}
