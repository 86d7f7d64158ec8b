package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"gatherfi/internal/core/domain"
	"gatherfi/internal/core/port/mocks"
)

func sellableEvent() *domain.Event {
	return &domain.Event{
		ID:          "e1",
		Organizer:   "org-1",
		TicketPrice: 10000,
		MaxTickets:  100,
		IsActive:    true,
		IsFunded:    true,
	}
}

// TestMintTicket checks the tier-scaled price; the mint carries the
// buyer's charge into escrow as part of the same repository call.
func TestMintTicket(t *testing.T) {
	tickets := mocks.NewMockTicketRepository(t)
	events := mocks.NewMockEventRepository(t)

	events.EXPECT().GetEvent(mock.Anything, "e1").Return(sellableEvent(), nil)
	tickets.EXPECT().
		MintTicket(mock.Anything, mock.AnythingOfType("domain.Ticket")).
		Run(func(ctx context.Context, tk domain.Ticket) {
			if tk.PurchasePrice != 30000 { // vvip is 3x face value
				t.Fatalf("price = %d, want 30000", tk.PurchasePrice)
			}
			if tk.Token == "" {
				t.Fatal("no token issued")
			}
		}).
		Return(&domain.Ticket{EventID: "e1", Number: 1, Owner: "fan-1", Tier: domain.TierVVIP, PurchasePrice: 30000}, nil)

	svc := NewTicketingUseCase(tickets, events)

	tk, err := svc.MintTicket(context.Background(), "e1", "fan-1", domain.TierVVIP, "A")
	if err != nil {
		t.Fatalf("MintTicket error: %v", err)
	}
	if tk.Number != 1 {
		t.Fatalf("number = %d, want 1", tk.Number)
	}
}

func TestMintTicketGates(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Event)
		wantErr error
	}{
		{"cancelled", func(ev *domain.Event) { ev.IsCancelled = true; ev.IsFunded = false }, domain.ErrAlreadyCancelled},
		{"not funded", func(ev *domain.Event) { ev.IsFunded = false }, domain.ErrEventNotFunded},
		{"paused", func(ev *domain.Event) { ev.IsPaused = true }, domain.ErrEventPaused},
		{"sold out", func(ev *domain.Event) { ev.TicketsSold = ev.MaxTickets }, domain.ErrSoldOut},
	}
	for _, tt := range tests {
		tickets := mocks.NewMockTicketRepository(t)
		events := mocks.NewMockEventRepository(t)

		ev := sellableEvent()
		tt.mutate(ev)
		events.EXPECT().GetEvent(mock.Anything, "e1").Return(ev, nil)

		svc := NewTicketingUseCase(tickets, events)
		if _, err := svc.MintTicket(context.Background(), "e1", "fan-1", domain.TierStandard, ""); !errors.Is(err, tt.wantErr) {
			t.Fatalf("%s: err = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestMintTicketInvalidTier(t *testing.T) {
	tickets := mocks.NewMockTicketRepository(t)
	events := mocks.NewMockEventRepository(t)

	svc := NewTicketingUseCase(tickets, events)

	if _, err := svc.MintTicket(context.Background(), "e1", "fan-1", "platinum", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

// TestMintTicketSoldOutRace checks that the repository's capacity check
// under lock surfaces even when the snapshot looked sellable.
func TestMintTicketSoldOutRace(t *testing.T) {
	tickets := mocks.NewMockTicketRepository(t)
	events := mocks.NewMockEventRepository(t)

	events.EXPECT().GetEvent(mock.Anything, "e1").Return(sellableEvent(), nil)
	tickets.EXPECT().
		MintTicket(mock.Anything, mock.AnythingOfType("domain.Ticket")).
		Return(nil, domain.ErrSoldOut)

	svc := NewTicketingUseCase(tickets, events)

	if _, err := svc.MintTicket(context.Background(), "e1", "fan-1", domain.TierStandard, ""); !errors.Is(err, domain.ErrSoldOut) {
		t.Fatalf("err = %v, want ErrSoldOut", err)
	}
}

func TestCheckIn(t *testing.T) {
	tickets := mocks.NewMockTicketRepository(t)
	events := mocks.NewMockEventRepository(t)

	events.EXPECT().GetEvent(mock.Anything, "e1").Return(sellableEvent(), nil)
	tickets.EXPECT().CheckInTicket(mock.Anything, "e1", int32(7)).
		Return(&domain.Ticket{EventID: "e1", Number: 7, IsCheckedIn: true}, nil)

	svc := NewTicketingUseCase(tickets, events)

	tk, err := svc.CheckIn(context.Background(), "e1", 7, "org-1")
	if err != nil {
		t.Fatalf("CheckIn error: %v", err)
	}
	if !tk.IsCheckedIn {
		t.Fatal("ticket not checked in")
	}
}

func TestCheckInNotOrganizer(t *testing.T) {
	tickets := mocks.NewMockTicketRepository(t)
	events := mocks.NewMockEventRepository(t)

	events.EXPECT().GetEvent(mock.Anything, "e1").Return(sellableEvent(), nil)

	svc := NewTicketingUseCase(tickets, events)

	if _, err := svc.CheckIn(context.Background(), "e1", 7, "fan-1"); !errors.Is(err, domain.ErrNotOrganizer) {
		t.Fatalf("err = %v, want ErrNotOrganizer", err)
	}
}

func TestTransferTicket(t *testing.T) {
	tickets := mocks.NewMockTicketRepository(t)
	events := mocks.NewMockEventRepository(t)

	tickets.EXPECT().TransferTicket(mock.Anything, "e1", int32(7), "fan-1", "fan-2").
		Return(&domain.Ticket{EventID: "e1", Number: 7, Owner: "fan-2"}, nil)

	svc := NewTicketingUseCase(tickets, events)

	tk, err := svc.Transfer(context.Background(), "e1", 7, "fan-1", "fan-2")
	if err != nil {
		t.Fatalf("Transfer error: %v", err)
	}
	if tk.Owner != "fan-2" {
		t.Fatalf("owner = %s, want fan-2", tk.Owner)
	}
}

func TestTransferTicketValidation(t *testing.T) {
	tickets := mocks.NewMockTicketRepository(t)
	events := mocks.NewMockEventRepository(t)

	svc := NewTicketingUseCase(tickets, events)
	ctx := context.Background()

	if _, err := svc.Transfer(ctx, "e1", 7, "fan-1", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("empty recipient: err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Transfer(ctx, "e1", 7, "fan-1", "fan-1"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("self transfer: err = %v, want ErrInvalidInput", err)
	}
}

func TestTransferTicketNotOwner(t *testing.T) {
	tickets := mocks.NewMockTicketRepository(t)
	events := mocks.NewMockEventRepository(t)

	tickets.EXPECT().TransferTicket(mock.Anything, "e1", int32(7), "mallory", "fan-2").
		Return(nil, domain.ErrNotTicketOwner)

	svc := NewTicketingUseCase(tickets, events)

	if _, err := svc.Transfer(context.Background(), "e1", 7, "mallory", "fan-2"); !errors.Is(err, domain.ErrNotTicketOwner) {
		t.Fatalf("err = %v, want ErrNotTicketOwner", err)
	}
}
