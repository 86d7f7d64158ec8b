package domain

import "time"

// Escrow is the custodial holding of all raised funds for one event.
// TotalAmount == Balance + ReleasedAmount after every operation.
type Escrow struct {
	EventID        string
	TotalAmount    int64
	Balance        int64
	ReleasedAmount int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Contribution records one backer's stake in an event. Amount accumulates
// across repeated contributions; VotingPower always equals Amount.
type Contribution struct {
	EventID        string
	Backer         string
	Amount         int64
	VotingPower    int64
	ClaimedProfits int64
	Refunded       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
