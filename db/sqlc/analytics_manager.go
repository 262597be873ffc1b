package sqlc

import (
	"context"
	"time"

	"github.com/saeidalz13/battleships/models/battleship"
	"github.com/sqlc-dev/pqtype"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

// AnalyticsManager records per-host counters and finished match summaries.
// Every call is bounded by QuerierCtxTimeout on top of the caller's ctx.
type AnalyticsManager struct {
	queries Querier
	db      txBeginner
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementGamesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.AnalyticsIncrementGamesCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementRematchCalledCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.AnalyticsIncrementRematchCalledCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementGamesFinishedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.AnalyticsIncrementGamesFinishedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetGamesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.AnalyticsGetGamesCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetRematchCalledCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.AnalyticsGetRematchCalledCount(ctx, serverIpNet)
}

// RecordMatchResult stores the summary of a finished game and bumps the
// finished games counter of the host, in one transaction when the
// manager was built on a database.
func (a *AnalyticsManager) RecordMatchResult(ctx context.Context, serverIpNet pqtype.Inet, game *battleship.Game, winner int) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	arg := InsertMatchResultParams{
		GameUuid:   game.Uuid(),
		GridSize:   int32(game.GridSize()),
		Winner:     int32(winner),
		ShotsFired: int32(game.ShotsFired()),
	}

	if a.db == nil {
		return recordMatchResult(ctx, a.queries, serverIpNet, arg)
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	// no-op once committed
	defer tx.Rollback()

	if err := recordMatchResult(ctx, New(tx), serverIpNet, arg); err != nil {
		return err
	}
	return tx.Commit()
}

func recordMatchResult(ctx context.Context, q Querier, serverIpNet pqtype.Inet, arg InsertMatchResultParams) error {
	if err := q.InsertMatchResult(ctx, arg); err != nil {
		return err
	}
	return q.AnalyticsIncrementGamesFinishedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetMatchResult(ctx context.Context, gameUuid string) (MatchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.GetMatchResult(ctx, gameUuid)
}
