package sqlc

import (
	"context"
	"database/sql"
)

// txBeginner is satisfied by *sql.DB.
type txBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// DbManager groups the stores the match processor writes to.
type DbManager struct {
	Analytics *AnalyticsManager
}

// NewDbManager works on any Querier. Multi-statement writes are not
// atomic with it; use NewDbManagerFromDb for a real database.
func NewDbManager(queries Querier) DbManager {
	return DbManager{
		Analytics: NewAnalyticsManager(queries),
	}
}

// NewDbManagerFromDb runs multi-statement writes in one transaction.
func NewDbManagerFromDb(db *sql.DB) DbManager {
	analytics := NewAnalyticsManager(New(db))
	analytics.db = db
	return DbManager{Analytics: analytics}
}
