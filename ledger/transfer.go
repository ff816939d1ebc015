package ledger

import (
	"context"
)

// Transferrer is the value-transfer capability the ledger consumes. It must
// atomically deduct amount from the source balance and credit the target,
// failing without effect when funds are insufficient.
type Transferrer interface {
	Transfer(ctx context.Context, from, to string, amount uint64) error
}

// TransferFunc adapts a function to the Transferrer interface.
type TransferFunc func(ctx context.Context, from, to string, amount uint64) error

func (f TransferFunc) Transfer(ctx context.Context, from, to string, amount uint64) error {
	return f(ctx, from, to, amount)
}
