package port

import (
	"context"

	"gatherfi/internal/core/domain"
)

// TransferLedger reads the instructed value movements for an event. The
// core never holds funds itself; each monetary repository operation writes
// its transfer instruction in the same transaction as the ledger mutation
// it settles, and the external payment rail consumes the instructions from
// this ledger. Implementations must be safe for concurrent use.
type TransferLedger interface {
	// ListTransfers returns the event's transfer instructions, oldest first.
	ListTransfers(ctx context.Context, eventID string) ([]domain.Transfer, error)
}
