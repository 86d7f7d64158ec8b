package port

import (
	"context"

	"gatherfi/internal/core/domain"
)

// EventRepository persists Event records and their lifecycle transitions.
// It is an outbound port in hexagonal architecture. Implementations must
// apply each transition atomically: lifecycle flags are re-checked inside
// the same transaction that flips them.
type EventRepository interface {
	// CreateEvent stores a new event together with its empty escrow and
	// profit pool. Returns domain.ErrAlreadyExists on an id collision.
	CreateEvent(ctx context.Context, ev domain.Event, esc domain.Escrow, pool domain.ProfitPool) error
	// GetEvent returns an event by id, or domain.ErrNotFound.
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	// UpdateEventInfo persists organizer-editable metadata fields.
	UpdateEventInfo(ctx context.Context, ev *domain.Event) error
	// MarkFunded transitions Active -> Funded. Fails with a state error
	// if the event is not active, already funded, or below target.
	MarkFunded(ctx context.Context, eventID string) (*domain.Event, error)
	// MarkCancelled transitions Active -> Cancelled.
	MarkCancelled(ctx context.Context, eventID string) (*domain.Event, error)
	// SetPaused toggles the pause flag on an active event.
	SetPaused(ctx context.Context, eventID string, paused bool) (*domain.Event, error)
}

// ContributionRepository owns Contribution and Escrow records. Monetary
// mutations update contribution, escrow and event rows in one transaction
// so the conservation invariants hold after every operation, and they
// record the matching transfer instruction in that same transaction.
type ContributionRepository interface {
	// GetContribution returns a backer's contribution, or domain.ErrNotFound.
	GetContribution(ctx context.Context, eventID, backer string) (*domain.Contribution, error)
	// GetEscrow returns the event's escrow, or domain.ErrNotFound.
	GetEscrow(ctx context.Context, eventID string) (*domain.Escrow, error)
	// ApplyContribution credits amount to the backer's contribution, the
	// escrow and the event's amountRaised atomically, creating the
	// contribution on first deposit.
	ApplyContribution(ctx context.Context, eventID, backer string, amount int64) (*domain.Contribution, error)
	// ApplyRefund pays back the backer's full amount on a cancelled event
	// and latches the contribution as refunded.
	ApplyRefund(ctx context.Context, eventID, backer string) (*domain.Contribution, error)
	// ListContributions returns all contributions for an event.
	ListContributions(ctx context.Context, eventID string) ([]domain.Contribution, error)
}

// GovernanceRepository owns Budget, BudgetItem and Vote records, and the
// milestone release against an approved budget.
type GovernanceRepository interface {
	// GetBudget returns the event's budget, or domain.ErrNotFound.
	GetBudget(ctx context.Context, eventID string) (*domain.Budget, error)
	// SaveBudget creates the budget or replaces it while unapproved.
	// Returns domain.ErrBudgetLocked if the existing budget is approved.
	SaveBudget(ctx context.Context, b domain.Budget) error
	// RecordVote inserts the vote (rejecting duplicates with
	// domain.ErrAlreadyVoted), updates the tallies, mirrors them onto the
	// event and latches approval per the quorum rule.
	RecordVote(ctx context.Context, v domain.Vote, quorumBps int64) (*domain.Budget, error)
	// ApplyRelease debits escrow balance, credits releasedAmount and
	// accumulates the release against the budget item, marking it paid
	// when fully covered.
	ApplyRelease(ctx context.Context, eventID string, itemIndex int32, amount int64) (*domain.Budget, error)
}

// TicketRepository owns Ticket records and the per-event monotonic ticket
// counter.
type TicketRepository interface {
	// MintTicket assigns the next sequential number, stores the ticket,
	// increments ticketsSold and adds the purchase price to the profit
	// pool revenue, all in one transaction. Returns domain.ErrSoldOut at
	// capacity.
	MintTicket(ctx context.Context, t domain.Ticket) (*domain.Ticket, error)
	// GetTicket returns a ticket by event and number, or domain.ErrNotFound.
	GetTicket(ctx context.Context, eventID string, number int32) (*domain.Ticket, error)
	// TransferTicket moves ownership. Returns domain.ErrNotTicketOwner
	// when owner does not hold the ticket.
	TransferTicket(ctx context.Context, eventID string, number int32, owner, newOwner string) (*domain.Ticket, error)
	// CheckInTicket latches the check-in flag. Returns
	// domain.ErrAlreadyCheckedIn on a second attempt.
	CheckInTicket(ctx context.Context, eventID string, number int32) (*domain.Ticket, error)
}

// ProfitRepository owns ProfitPool and ProfitClaim records.
type ProfitRepository interface {
	// GetPool returns the event's profit pool, or domain.ErrNotFound.
	GetPool(ctx context.Context, eventID string) (*domain.ProfitPool, error)
	// FinalizePool computes expenses, net profit and the share split in
	// one transaction and latches IsCalculated. A second call fails with
	// domain.ErrAlreadyCalculated.
	FinalizePool(ctx context.Context, eventID string) (*domain.ProfitPool, error)
	// ApplyClaim creates the backer's claim and adds the entitlement to
	// the contribution's claimed profits. A second claim fails with
	// domain.ErrAlreadyClaimed.
	ApplyClaim(ctx context.Context, eventID, backer string) (*domain.ProfitClaim, error)
	// WithdrawPlatformShare pays the pool's platform share to the given
	// recipient and latches the withdrawal. Requires a calculated pool; a
	// second call fails with domain.ErrFeesWithdrawn.
	WithdrawPlatformShare(ctx context.Context, eventID, recipient string) (*domain.ProfitPool, error)
}
