package interfaces

import "context"

// TxRepositories bundles every repository bound to one open transaction.
type TxRepositories struct {
	Persons      IPersonRepository
	Couples      ICoupleRepository
	Categories   ICategoryRepository
	CatalogItems ICatalogItemRepository
	Demands      IDemandRepository
	Quotes       IQuoteRepository
}

// ITxManager runs fn inside a single storage transaction. If fn returns an
// error the transaction rolls back and the error is surfaced unchanged;
// otherwise it commits. SQLite serializes writers, which gives the
// read-then-write paths (accept item, create quote) the serializable
// ordering the invariants require.
type ITxManager interface {
	WithinTx(ctx context.Context, fn func(tx TxRepositories) error) error
}
