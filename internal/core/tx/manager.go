// Package tx lets domain services group repository calls into one database transaction.
package tx

import (
	"context"
)

// Manager runs fn inside one read-write transaction.
// Repositories called with the ctx handed to fn join that transaction,
// and a nested RunInTransaction joins the outer one instead of opening another.
// Posting and unposting a document rely on this so the header, the lines
// and the ledger movements commit together.
type Manager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReadOnlyManager adds a snapshot read: every query issued inside fn
// sees the same committed state. Capacity calculations load their whole
// input set through it.
type ReadOnlyManager interface {
	Manager
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
