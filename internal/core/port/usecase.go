package port

import (
	"context"
	"time"

	"gatherfi/internal/core/domain"
)

// CreateEventInput carries the parameters for event creation. Location is
// free text and must resolve to a recognized city.
type CreateEventInput struct {
	Organizer    string
	Name         string
	Description  string
	Category     domain.EventCategory
	TargetAmount int64
	TicketPrice  int64
	MaxTickets   int32
	EventDate    time.Time
	Location     string
}

// UpdateEventInput carries organizer-editable metadata. Nil fields are
// left unchanged.
type UpdateEventInput struct {
	EventID     string
	Caller      string
	Name        *string
	Description *string
	Category    *domain.EventCategory
	EventDate   *time.Time
	Location    *string
}

// RegistryUseCase owns Event records and their lifecycle state machine:
// Active -> Funded or Active -> Cancelled, both terminal.
type RegistryUseCase interface {
	CreateEvent(ctx context.Context, in CreateEventInput) (*domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	UpdateEvent(ctx context.Context, in UpdateEventInput) (*domain.Event, error)
	FinalizeFunding(ctx context.Context, eventID string) (*domain.Event, error)
	CancelEvent(ctx context.Context, eventID, caller string) (*domain.Event, error)
	SetPaused(ctx context.Context, eventID, caller string, paused bool) (*domain.Event, error)
}

// FundingUseCase is the contribution ledger: deposits into escrow and
// refunds after cancellation.
type FundingUseCase interface {
	Contribute(ctx context.Context, eventID, backer string, amount int64) (*domain.Contribution, error)
	Refund(ctx context.Context, eventID, backer string) (*domain.Contribution, error)
	GetEscrow(ctx context.Context, eventID string) (*domain.Escrow, error)
	ListContributions(ctx context.Context, eventID string) ([]domain.Contribution, error)
	ListTransfers(ctx context.Context, eventID string) ([]domain.Transfer, error)
}

// SubmitBudgetInput carries a budget submission. TotalAmount must equal
// the sum of the item amounts.
type SubmitBudgetInput struct {
	EventID     string
	Organizer   string
	Items       []domain.BudgetItem
	TotalAmount int64
}

// GovernanceUseCase owns budget submission and weighted voting.
type GovernanceUseCase interface {
	SubmitBudget(ctx context.Context, in SubmitBudgetInput) (*domain.Budget, error)
	VoteOnBudget(ctx context.Context, eventID, voter string, approve bool) (*domain.Budget, error)
	GetBudget(ctx context.Context, eventID string) (*domain.Budget, error)
}

// MilestoneUseCase authorizes partial escrow payout against an approved
// budget.
type MilestoneUseCase interface {
	ReleaseMilestone(ctx context.Context, eventID, caller string, itemIndex int32, amount int64) (*domain.Budget, error)
}

// TicketingUseCase issues priced admission credentials and feeds the
// profit pool.
type TicketingUseCase interface {
	MintTicket(ctx context.Context, eventID, buyer string, tier domain.TicketTier, zone string) (*domain.Ticket, error)
	CheckIn(ctx context.Context, eventID string, number int32, caller string) (*domain.Ticket, error)
	Transfer(ctx context.Context, eventID string, number int32, caller, newOwner string) (*domain.Ticket, error)
}

// ProfitUseCase computes and pays out the 60/35/5 net profit split.
type ProfitUseCase interface {
	CalculateProfits(ctx context.Context, eventID, caller string) (*domain.ProfitPool, error)
	ClaimProfits(ctx context.Context, eventID, backer string) (*domain.ProfitClaim, error)
	WithdrawFees(ctx context.Context, eventID, caller string) (*domain.ProfitPool, error)
	GetPool(ctx context.Context, eventID string) (*domain.ProfitPool, error)
}
