package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"

	"github.com/charmbracelet/log"
	"github.com/saeidalz13/battleships/db/sqlc"
	cerr "github.com/saeidalz13/battleships/internal/error"
	mb "github.com/saeidalz13/battleships/models/battleship"
	"github.com/sqlc-dev/pqtype"
)

const (
	msgOutsideGrid = "This position is outside the grid"
	msgAlreadyShot = "This position was already shot"
	msgWon         = "Congratulations, you won!"
	msgLost        = "Better luck next time"
)

// MatchProcessor drives matches from creation to the final result and
// records analytics for them when a querier is available.
type MatchProcessor struct {
	gameManager mb.GameManager
	dbManager   *sqlc.DbManager
	ipnet       net.IPNet
	logger      *log.Logger
}

type Option func(*MatchProcessor) error

// NewMatchProcessor panics on an invalid option. q may be nil, in which
// case nothing is recorded unless WithDb is given.
func NewMatchProcessor(gameManager mb.GameManager, q sqlc.Querier, optFuncs ...Option) *MatchProcessor {
	mp := MatchProcessor{gameManager: gameManager}
	for _, opt := range optFuncs {
		if err := opt(&mp); err != nil {
			panic(err)
		}
	}

	if mp.logger == nil {
		mp.logger = log.Default()
	}
	if mp.dbManager == nil && q != nil {
		dbm := sqlc.NewDbManager(q)
		mp.dbManager = &dbm
	}

	if mp.ipnet.IP == nil {
		ipnet, err := getServerIpNet()
		if err != nil {
			mp.logger.Warn("falling back to loopback for analytics", "err", err)
			ipnet = net.IPNet{IP: net.IPv4(127, 0, 0, 1).To4(), Mask: net.CIDRMask(32, 32)}
		}
		mp.ipnet = ipnet
	}

	return &mp
}

func WithLogger(logger *log.Logger) Option {
	return func(mp *MatchProcessor) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		mp.logger = logger
		return nil
	}
}

// WithDb records analytics on db, writing each match result atomically.
func WithDb(db *sql.DB) Option {
	return func(mp *MatchProcessor) error {
		if db == nil {
			return errors.New("db must not be nil")
		}
		dbm := sqlc.NewDbManagerFromDb(db)
		mp.dbManager = &dbm
		return nil
	}
}

func WithHostIpNet(ipnet net.IPNet) Option {
	return func(mp *MatchProcessor) error {
		if ipnet.IP == nil {
			return errors.New("host ip must not be empty")
		}
		mp.ipnet = ipnet
		return nil
	}
}

// First non-loopback IPv4 network of an interface that is up.
func getServerIpNet() (net.IPNet, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return net.IPNet{}, err
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return net.IPNet{}, err
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip := ipnet.IP.To4(); ip != nil && !ip.IsLoopback() {
				return net.IPNet{IP: ip, Mask: net.CIDRMask(32, 32)}, nil
			}
		}
	}

	return net.IPNet{}, errors.New("ipnet could not be found")
}

// Expose this method to use it in testing
func (mp *MatchProcessor) GetIpNet() net.IPNet {
	return mp.ipnet
}

func (mp *MatchProcessor) serverInet() pqtype.Inet {
	return pqtype.Inet{IPNet: mp.ipnet, Valid: true}
}

// CreateGame registers a new game with the manager. viewer is the player
// who sees its own ships.
func (mp *MatchProcessor) CreateGame(ctx context.Context, difficulty uint8, viewer int) (*mb.Game, error) {
	game, err := mp.gameManager.CreateGame(difficulty, viewer)
	if err != nil {
		return nil, err
	}
	mp.logger.Info("game created", "game", game.Uuid(), "gridSize", game.GridSize())

	if mp.dbManager != nil {
		if err := mp.dbManager.Analytics.IncrementGamesCreatedCount(ctx, mp.serverInet()); err != nil {
			// for now not killing the game for it
			mp.logger.Error("failed to record created game", "err", err)
		}
	}
	return game, nil
}

// Run plays game to the end: both fleets are placed, player 0 first, then
// the players take turns shooting until one fleet is destroyed. It returns
// the winner. Errors come from the players' input or from ctx; the game
// is removed from the manager either way.
func (mp *MatchProcessor) Run(ctx context.Context, game *mb.Game, players [2]mb.Player) (int, error) {
	defer mp.gameManager.TerminateGame(game.Uuid())
	logger := mp.logger.With("game", game.Uuid())

	for i, player := range players {
		if player.Number() != i {
			return -1, fmt.Errorf("player in slot %d: %w", i, cerr.ErrPlayerNumber(player.Number()))
		}
	}

	logger.Info("placement phase started")
	if err := game.PopulateGrids(players); err != nil {
		return -1, err
	}

	logger.Info("combat phase started")
	current := mb.PlayerOne
	winner := -1

combatLoop:
	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		player := players[current]
		observe(player, game, false)

		c, err := mp.nextShot(game, player)
		if err != nil {
			return -1, err
		}

		result, err := game.Shoot(c, current)
		if err != nil {
			return -1, err
		}
		logger.Debug("shot", "player", current, "at", c.Label(), "result", result)
		mp.announce(game, players, current, c, result)

		if w, ok := game.Winner(); ok {
			winner = w
			break combatLoop
		}
		current = mb.Opponent(current)
	}

	game.FinishGame()
	for _, player := range players {
		observe(player, game, true)
		if player.Number() == winner {
			notify(player, msgWon)
		} else {
			notify(player, msgLost)
		}
	}
	logger.Info("game finished", "winner", winner, "shotsFired", game.ShotsFired())

	if mp.dbManager != nil {
		if err := mp.dbManager.Analytics.RecordMatchResult(ctx, mp.serverInet(), game, winner); err != nil {
			logger.Error("failed to record match result", "err", err)
		}
	}
	return winner, nil
}

// Rematch asks every player that votes whether to play again. A rematch
// needs at least one voter and no refusal.
func (mp *MatchProcessor) Rematch(ctx context.Context, players [2]mb.Player) (bool, error) {
	voters := 0
	for _, player := range players {
		voter, ok := player.(mb.RematchVoter)
		if !ok {
			continue
		}
		voters++

		agreed, err := voter.WantsRematch()
		if err != nil {
			return false, err
		}
		if !agreed {
			mp.logger.Info("rematch declined", "player", player.Number())
			return false, nil
		}
	}
	if voters == 0 {
		return false, nil
	}

	mp.logger.Info("rematch accepted")
	if mp.dbManager != nil {
		if err := mp.dbManager.Analytics.IncrementRematchCalledCount(ctx, mp.serverInet()); err != nil {
			mp.logger.Error("failed to record rematch", "err", err)
		}
	}
	return true, nil
}

// nextShot asks player until it names a position it may shoot at.
func (mp *MatchProcessor) nextShot(game *mb.Game, player mb.Player) (mb.Coordinates, error) {
	for {
		c, err := player.NextShot()
		if err != nil {
			return c, err
		}

		valid, err := game.IsValid(c, player.Number())
		if err != nil {
			if errors.Is(err, cerr.ErrOutOfBounds) {
				notify(player, msgOutsideGrid)
				continue
			}
			return c, err
		}
		if !valid {
			notify(player, msgAlreadyShot)
			continue
		}
		return c, nil
	}
}

func (mp *MatchProcessor) announce(game *mb.Game, players [2]mb.Player, shooter int, c mb.Coordinates, result mb.ShotResult) {
	outcome := result.String()
	if result == mb.ShotHitAndSunk {
		target, _ := game.Grid(mb.Opponent(shooter))
		outcome = fmt.Sprintf("%s %s", outcome, target.TypeAt(c).Name())
	}

	notify(players[shooter], outcome)
	notify(players[mb.Opponent(shooter)], fmt.Sprintf("Opponent shot at %s: %s", c.Label(), outcome))
}

func notify(p mb.Player, msg string) {
	if n, ok := p.(mb.Notifier); ok {
		n.Notify(msg)
	}
}

func observe(p mb.Player, game *mb.Game, final bool) {
	if o, ok := p.(mb.Observer); ok {
		o.Observe(game, final)
	}
}
