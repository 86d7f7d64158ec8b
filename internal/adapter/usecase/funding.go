package usecase

import (
	"context"

	"gatherfi/internal/core/domain"
	"gatherfi/internal/core/port"
)

// FundingUseCase is the contribution ledger. It accepts deposits into an
// event's escrow while the event is active and pays them back after
// cancellation, preserving amountRaised == escrow.totalAmount ==
// sum(contribution.amount) at every step.
type FundingUseCase struct {
	contributions port.ContributionRepository
	events        port.EventRepository
	transfers     port.TransferLedger
}

// NewFundingUseCase creates the ledger with its repositories and the
// transfer instruction ledger.
func NewFundingUseCase(contributions port.ContributionRepository, events port.EventRepository, transfers port.TransferLedger) *FundingUseCase {
	return &FundingUseCase{contributions: contributions, events: events, transfers: transfers}
}

// Contribute credits amount to the backer's contribution, the escrow and
// the event in one atomic step; the deposit instruction for the payment
// rail is recorded in the same transaction. Repeat deposits accumulate;
// the distinct-backer counter increments only on the first one.
func (u *FundingUseCase) Contribute(ctx context.Context, eventID, backer string, amount int64) (*domain.Contribution, error) {
	if backer == "" {
		return nil, domain.ErrInvalidInput
	}
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	ev, err := u.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if amount < ev.MinContribution {
		return nil, domain.ErrInsufficientContribution
	}
	if ev.IsCancelled {
		return nil, domain.ErrAlreadyCancelled
	}
	if ev.IsFunded {
		return nil, domain.ErrAlreadyFunded
	}
	if !ev.IsActive {
		return nil, domain.ErrEventNotActive
	}
	if ev.IsPaused {
		return nil, domain.ErrEventPaused
	}
	return u.contributions.ApplyContribution(ctx, eventID, backer, amount)
}

// Refund pays back the backer's full amount. Available only on cancelled
// events; a second attempt for the same backer fails.
func (u *FundingUseCase) Refund(ctx context.Context, eventID, backer string) (*domain.Contribution, error) {
	ev, err := u.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !ev.IsCancelled {
		return nil, domain.ErrNotCancelled
	}
	return u.contributions.ApplyRefund(ctx, eventID, backer)
}

// GetEscrow returns the escrow snapshot for an event.
func (u *FundingUseCase) GetEscrow(ctx context.Context, eventID string) (*domain.Escrow, error) {
	return u.contributions.GetEscrow(ctx, eventID)
}

// ListContributions returns every contribution on an event, refunded ones
// included.
func (u *FundingUseCase) ListContributions(ctx context.Context, eventID string) ([]domain.Contribution, error) {
	return u.contributions.ListContributions(ctx, eventID)
}

// ListTransfers returns the event's recorded transfer instructions.
func (u *FundingUseCase) ListTransfers(ctx context.Context, eventID string) ([]domain.Transfer, error) {
	return u.transfers.ListTransfers(ctx, eventID)
}
