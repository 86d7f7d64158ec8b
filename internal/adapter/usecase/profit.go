package usecase

import (
	"context"
	"errors"

	"gatherfi/internal/core/domain"
	"gatherfi/internal/core/port"
)

// ProfitUseCase computes the post-event 60/35/5 split of net profit and
// pays out idempotent, replay-safe backer claims.
type ProfitUseCase struct {
	profits       port.ProfitRepository
	events        port.EventRepository
	contributions port.ContributionRepository

	// platformAccount is the only caller allowed to withdraw the
	// platform share, and the recipient of that payout.
	platformAccount string
}

// NewProfitUseCase creates the distribution engine.
func NewProfitUseCase(profits port.ProfitRepository, events port.EventRepository, contributions port.ContributionRepository, platformAccount string) *ProfitUseCase {
	return &ProfitUseCase{profits: profits, events: events, contributions: contributions, platformAccount: platformAccount}
}

// CalculateProfits sets totalExpenses from released escrow, computes net
// profit floored at zero and splits it exactly: backer and organizer
// shares by floor division, platform share by subtraction. Idempotent by
// rejection; a second call fails.
func (u *ProfitUseCase) CalculateProfits(ctx context.Context, eventID, caller string) (*domain.ProfitPool, error) {
	ev, err := u.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.Organizer != caller {
		return nil, domain.ErrNotOrganizer
	}
	pool, err := u.profits.GetPool(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if pool.IsCalculated {
		return nil, domain.ErrAlreadyCalculated
	}
	return u.profits.FinalizePool(ctx, eventID)
}

// ClaimProfits pays out the backer's proportional cut of the backer share.
// The claim record's existence guards against double payment.
func (u *ProfitUseCase) ClaimProfits(ctx context.Context, eventID, backer string) (*domain.ProfitClaim, error) {
	pool, err := u.profits.GetPool(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !pool.IsCalculated {
		return nil, domain.ErrNotCalculated
	}
	if _, err = u.contributions.GetContribution(ctx, eventID, backer); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotBacker
		}
		return nil, err
	}
	return u.profits.ApplyClaim(ctx, eventID, backer)
}

// WithdrawFees pays the pool's platform share to the platform account
// exactly once. Available only after calculation.
func (u *ProfitUseCase) WithdrawFees(ctx context.Context, eventID, caller string) (*domain.ProfitPool, error) {
	if caller != u.platformAccount {
		return nil, domain.ErrNotPlatform
	}
	pool, err := u.profits.GetPool(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !pool.IsCalculated {
		return nil, domain.ErrNotCalculated
	}
	if pool.PlatformWithdrawn {
		return nil, domain.ErrFeesWithdrawn
	}
	return u.profits.WithdrawPlatformShare(ctx, eventID, u.platformAccount)
}

// GetPool returns the profit pool snapshot for an event.
func (u *ProfitUseCase) GetPool(ctx context.Context, eventID string) (*domain.ProfitPool, error) {
	return u.profits.GetPool(ctx, eventID)
}
