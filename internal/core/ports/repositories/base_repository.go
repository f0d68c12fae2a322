package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager exposes the pgx transaction lifecycle to repositories
// whose operations span several writes, such as a rate mutation with its
// history snapshot or a movement insert with its stock deltas.
type TransactionManager interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits the transaction.
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back the transaction. Safe to call after Commit.
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RepositoryWithTx marks a repository whose multi-write operations run
// atomically through a TransactionManager.
type RepositoryWithTx interface {
	TransactionManager
}
