package domain

import "time"

// Transfer directions. Deposits move value from a counterparty into the
// event's escrow, payouts move it back out.
const (
	TransferDeposit = "deposit"
	TransferPayout  = "payout"
)

// Transfer is one instructed movement of value between a counterparty and
// an event's escrow. Rows are written in the same transaction as the
// ledger mutation they settle, so an instruction exists exactly when the
// mutation committed; the external payment rail consumes them from there.
type Transfer struct {
	ID           string
	EventID      string
	Direction    string
	Counterparty string
	Amount       int64
	CreatedAt    time.Time
}
