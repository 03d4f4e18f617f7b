package repositories

import "context"

// TxFn is a function that runs within a transaction.
// Repositories called with the ctx passed to fn join the transaction.
type TxFn func(ctx context.Context) error

// TransactionManager runs a unit of work atomically.
// The transaction is rolled back if fn returns an error.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
