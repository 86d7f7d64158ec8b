package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gatherfi/internal/core/domain"
	"gatherfi/internal/core/port"
)

// TicketingUseCase issues priced admission credentials once an event is
// funded. Ticket numbers are sequential per event and never reused; every
// sale feeds the profit pool's revenue.
type TicketingUseCase struct {
	tickets port.TicketRepository
	events  port.EventRepository

	now func() time.Time
}

// NewTicketingUseCase creates the ticketing engine.
func NewTicketingUseCase(tickets port.TicketRepository, events port.EventRepository) *TicketingUseCase {
	return &TicketingUseCase{tickets: tickets, events: events, now: time.Now}
}

// MintTicket charges ticketPrice scaled by the tier multiplier, assigns
// the next sequential number and adds the charge to totalRevenue, with
// the buyer's deposit instruction recorded alongside. Fails with
// ErrSoldOut at capacity.
func (u *TicketingUseCase) MintTicket(ctx context.Context, eventID, buyer string, tier domain.TicketTier, zone string) (*domain.Ticket, error) {
	if buyer == "" {
		return nil, domain.ErrInvalidInput
	}
	if !tier.Valid() {
		return nil, domain.ErrInvalidInput
	}
	ev, err := u.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.IsCancelled {
		return nil, domain.ErrAlreadyCancelled
	}
	if !ev.IsFunded {
		return nil, domain.ErrEventNotFunded
	}
	if ev.IsPaused {
		return nil, domain.ErrEventPaused
	}
	if ev.TicketsSold >= ev.MaxTickets {
		return nil, domain.ErrSoldOut
	}
	price := domain.TicketPrice(ev.TicketPrice, tier)
	t := domain.Ticket{
		EventID:       eventID,
		Owner:         buyer,
		Tier:          tier,
		Zone:          zone,
		PurchasePrice: price,
		Token:         uuid.NewString(),
		PurchasedAt:   u.now(),
	}
	return u.tickets.MintTicket(ctx, t)
}

// CheckIn latches a ticket as used at the door. Only the organizer may
// check tickets in; a second check-in fails.
func (u *TicketingUseCase) CheckIn(ctx context.Context, eventID string, number int32, caller string) (*domain.Ticket, error) {
	ev, err := u.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.Organizer != caller {
		return nil, domain.ErrNotOrganizer
	}
	return u.tickets.CheckInTicket(ctx, eventID, number)
}

// Transfer moves a ticket to a new owner. The caller must hold the
// ticket, and checked-in tickets cannot move.
func (u *TicketingUseCase) Transfer(ctx context.Context, eventID string, number int32, caller, newOwner string) (*domain.Ticket, error) {
	if newOwner == "" || newOwner == caller {
		return nil, domain.ErrInvalidInput
	}
	return u.tickets.TransferTicket(ctx, eventID, number, caller, newOwner)
}
