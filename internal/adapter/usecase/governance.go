package usecase

import (
	"context"
	"errors"
	"time"

	"gatherfi/internal/core/domain"
	"gatherfi/internal/core/port"
)

// GovernanceUseCase tallies weighted backer approval of the organizer's
// budget. Voting power equals contributed amount; approval latches once a
// strict majority holds and the quorum fraction of raised capital has
// voted.
type GovernanceUseCase struct {
	gov           port.GovernanceRepository
	events        port.EventRepository
	contributions port.ContributionRepository

	// quorumBps is the quorum fraction in basis points of amountRaised.
	quorumBps int64

	now func() time.Time
}

// NewGovernanceUseCase creates the engine. quorumBps comes from config;
// the exact intended quorum rule is an open question upstream.
func NewGovernanceUseCase(gov port.GovernanceRepository, events port.EventRepository, contributions port.ContributionRepository, quorumBps int64) *GovernanceUseCase {
	return &GovernanceUseCase{gov: gov, events: events, contributions: contributions, quorumBps: quorumBps, now: time.Now}
}

// SubmitBudget creates the event's budget, or replaces it while still
// unapproved. The declared total must equal the sum of the item amounts.
func (u *GovernanceUseCase) SubmitBudget(ctx context.Context, in port.SubmitBudgetInput) (*domain.Budget, error) {
	ev, err := u.events.GetEvent(ctx, in.EventID)
	if err != nil {
		return nil, err
	}
	if ev.Organizer != in.Organizer {
		return nil, domain.ErrNotOrganizer
	}
	if !ev.IsFunded {
		return nil, domain.ErrEventNotFunded
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.Name == "" || it.Amount <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if !it.Category.Valid() {
			return nil, domain.ErrInvalidInput
		}
	}
	if domain.SumItems(in.Items) != in.TotalAmount {
		return nil, domain.ErrBudgetTotalMismatch
	}

	now := u.now()
	items := make([]domain.BudgetItem, len(in.Items))
	for i, it := range in.Items {
		it.Index = int32(i)
		it.ReleasedAmount = 0
		it.IsPaid = false
		it.PaidAt = nil
		items[i] = it
	}
	b := domain.Budget{
		EventID:     in.EventID,
		Organizer:   in.Organizer,
		Items:       items,
		TotalAmount: in.TotalAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = u.gov.SaveBudget(ctx, b); err != nil {
		return nil, err
	}
	return &b, nil
}

// VoteOnBudget records the backer's weighted vote exactly once and updates
// the running tallies. Votes arriving after approval are still recorded
// but cannot change the outcome.
func (u *GovernanceUseCase) VoteOnBudget(ctx context.Context, eventID, voter string, approve bool) (*domain.Budget, error) {
	if _, err := u.gov.GetBudget(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	c, err := u.contributions.GetContribution(ctx, eventID, voter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotBacker
		}
		return nil, err
	}
	if c.Refunded {
		return nil, domain.ErrNotBacker
	}
	v := domain.Vote{
		EventID:     eventID,
		Voter:       voter,
		Approve:     approve,
		VotingPower: c.VotingPower,
		VotedAt:     u.now(),
	}
	return u.gov.RecordVote(ctx, v, u.quorumBps)
}

// GetBudget returns the budget snapshot for an event.
func (u *GovernanceUseCase) GetBudget(ctx context.Context, eventID string) (*domain.Budget, error) {
	return u.gov.GetBudget(ctx, eventID)
}
