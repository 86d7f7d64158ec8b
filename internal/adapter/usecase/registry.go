package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gatherfi/internal/core/domain"
	"gatherfi/internal/core/port"
)

// RegistryUseCase implements the event registry: it owns Event records and
// their lifecycle state machine. Every other component consults it for
// lifecycle gates.
type RegistryUseCase struct {
	events port.EventRepository

	// minContribution is stamped onto new events so the funding ledger
	// can enforce it without consulting config.
	minContribution int64

	now func() time.Time
}

// NewRegistryUseCase creates the registry with the provided repository and
// the platform-wide minimum contribution.
func NewRegistryUseCase(events port.EventRepository, minContribution int64) *RegistryUseCase {
	return &RegistryUseCase{events: events, minContribution: minContribution, now: time.Now}
}

// CreateEvent validates the input, resolves the location to a recognized
// city/state pair and stores the event in state Active together with its
// empty escrow and profit pool.
func (u *RegistryUseCase) CreateEvent(ctx context.Context, in port.CreateEventInput) (*domain.Event, error) {
	if in.Organizer == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TargetAmount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if in.TicketPrice <= 0 {
		return nil, domain.ErrInvalidTicketPrice
	}
	if in.MaxTickets <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := u.now()
	if !in.EventDate.After(now) {
		return nil, domain.ErrEventDatePassed
	}
	if !in.Category.Valid() {
		return nil, domain.ErrInvalidInput
	}
	city, state, err := domain.ResolveLocation(in.Location)
	if err != nil {
		return nil, err
	}

	ev := domain.Event{
		ID:              uuid.NewString(),
		Organizer:       in.Organizer,
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		TargetAmount:    in.TargetAmount,
		MinContribution: u.minContribution,
		TicketPrice:     in.TicketPrice,
		MaxTickets:      in.MaxTickets,
		EventDate:       in.EventDate,
		Location:        in.Location,
		City:            city,
		State:           state,
		Country:         domain.Country,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	esc := domain.Escrow{EventID: ev.ID, CreatedAt: now, UpdatedAt: now}
	pool := domain.ProfitPool{EventID: ev.ID, CreatedAt: now}

	if err = u.events.CreateEvent(ctx, ev, esc, pool); err != nil {
		return nil, err
	}
	return &ev, nil
}

// GetEvent returns an event snapshot by id.
func (u *RegistryUseCase) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	return u.events.GetEvent(ctx, id)
}

// UpdateEvent applies organizer edits to metadata fields while the event
// is not cancelled. A new location must resolve like at creation.
func (u *RegistryUseCase) UpdateEvent(ctx context.Context, in port.UpdateEventInput) (*domain.Event, error) {
	ev, err := u.events.GetEvent(ctx, in.EventID)
	if err != nil {
		return nil, err
	}
	if ev.Organizer != in.Caller {
		return nil, domain.ErrNotOrganizer
	}
	if ev.IsCancelled {
		return nil, domain.ErrAlreadyCancelled
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		ev.Name = *in.Name
	}
	if in.Description != nil {
		ev.Description = *in.Description
	}
	if in.Category != nil {
		if !in.Category.Valid() {
			return nil, domain.ErrInvalidInput
		}
		ev.Category = *in.Category
	}
	if in.EventDate != nil {
		if !in.EventDate.After(u.now()) {
			return nil, domain.ErrEventDatePassed
		}
		ev.EventDate = *in.EventDate
	}
	if in.Location != nil {
		city, state, err := domain.ResolveLocation(*in.Location)
		if err != nil {
			return nil, err
		}
		ev.Location = *in.Location
		ev.City = city
		ev.State = state
	}
	ev.UpdatedAt = u.now()
	if err = u.events.UpdateEventInfo(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// FinalizeFunding transitions Active -> Funded once the raised amount has
// reached the target. Any caller may finalize; the transition depends
// only on the ledger state. It is terminal for funding and blocks
// cancellation from then on.
func (u *RegistryUseCase) FinalizeFunding(ctx context.Context, eventID string) (*domain.Event, error) {
	ev, err := u.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !ev.IsActive {
		return nil, domain.ErrEventNotActive
	}
	if ev.IsFunded {
		return nil, domain.ErrAlreadyFunded
	}
	if ev.AmountRaised < ev.TargetAmount {
		return nil, domain.ErrTargetNotReached
	}
	return u.events.MarkFunded(ctx, eventID)
}

// CancelEvent transitions Active -> Cancelled. Only the organizer may
// cancel, and never after funding. Cancellation unlocks refunds.
func (u *RegistryUseCase) CancelEvent(ctx context.Context, eventID, caller string) (*domain.Event, error) {
	ev, err := u.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.Organizer != caller {
		return nil, domain.ErrNotOrganizer
	}
	if ev.IsFunded {
		return nil, domain.ErrCannotCancelFunded
	}
	if ev.IsCancelled {
		return nil, domain.ErrAlreadyCancelled
	}
	return u.events.MarkCancelled(ctx, eventID)
}

// SetPaused toggles the organizer's emergency pause. Paused events reject
// contributions and ticket sales until resumed.
func (u *RegistryUseCase) SetPaused(ctx context.Context, eventID, caller string, paused bool) (*domain.Event, error) {
	ev, err := u.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.Organizer != caller {
		return nil, domain.ErrNotOrganizer
	}
	if !ev.IsActive {
		return nil, domain.ErrEventNotActive
	}
	return u.events.SetPaused(ctx, eventID, paused)
}
