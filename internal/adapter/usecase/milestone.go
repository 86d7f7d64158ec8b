package usecase

import (
	"context"
	"errors"

	"gatherfi/internal/core/domain"
	"gatherfi/internal/core/port"
)

// MilestoneUseCase authorizes partial escrow payouts against an approved
// budget. Releases accumulate per item; an item flips to paid only when
// its full amount has been released.
type MilestoneUseCase struct {
	gov    port.GovernanceRepository
	events port.EventRepository
}

// NewMilestoneUseCase creates the release controller.
func NewMilestoneUseCase(gov port.GovernanceRepository, events port.EventRepository) *MilestoneUseCase {
	return &MilestoneUseCase{gov: gov, events: events}
}

// ReleaseMilestone debits escrow by amount against one budget item; the
// payout instruction to the organizer is recorded in the same
// transaction. The escrow invariant
// totalAmount == balance + releasedAmount is preserved; a release that
// would overdraw the balance or the item's remaining amount is rejected
// outright, never clamped.
func (u *MilestoneUseCase) ReleaseMilestone(ctx context.Context, eventID, caller string, itemIndex int32, amount int64) (*domain.Budget, error) {
	ev, err := u.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.Organizer != caller {
		return nil, domain.ErrNotOrganizer
	}
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	b, err := u.gov.GetBudget(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	if !b.IsApproved {
		return nil, domain.ErrBudgetNotApproved
	}
	if itemIndex < 0 || int(itemIndex) >= len(b.Items) {
		return nil, domain.ErrInvalidMilestoneIndex
	}
	item := b.Items[itemIndex]
	if item.IsPaid {
		return nil, domain.ErrMilestonePaid
	}
	if amount > item.Amount-item.ReleasedAmount {
		return nil, domain.ErrExceedsItemAmount
	}
	return u.gov.ApplyRelease(ctx, eventID, itemIndex, amount)
}
