package repositories

import (
	"context"

	"github.com/ivanmsk/gw-contacts/internal/middlewares"
	"github.com/jmoiron/sqlx"
)

// ext returns the request-scoped transaction when the tx middleware supplied
// one, otherwise the shared pool.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
