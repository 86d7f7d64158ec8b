package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"gatherfi/internal/core/domain"
	"gatherfi/internal/core/port"
	"gatherfi/internal/core/port/mocks"
)

func validCreateInput() port.CreateEventInput {
	return port.CreateEventInput{
		Organizer:    "org-1",
		Name:         "Felabration",
		Description:  "Afrobeat night",
		Category:     domain.CategoryConcert,
		TargetAmount: 500000,
		TicketPrice:  10000,
		MaxTickets:   300,
		EventDate:    time.Now().Add(30 * 24 * time.Hour),
		Location:     "New Afrika Shrine, Lagos",
	}
}

// TestCreateEvent checks that a valid input produces an active event with
// a resolved location and an empty escrow and pool.
func TestCreateEvent(t *testing.T) {
	events := mocks.NewMockEventRepository(t)

	var stored domain.Event
	events.EXPECT().
		CreateEvent(mock.Anything, mock.AnythingOfType("domain.Event"), mock.AnythingOfType("domain.Escrow"), mock.AnythingOfType("domain.ProfitPool")).
		Run(func(ctx context.Context, ev domain.Event, esc domain.Escrow, pool domain.ProfitPool) {
			stored = ev
			if esc.EventID != ev.ID || pool.EventID != ev.ID {
				t.Fatalf("escrow/pool not keyed to event: %s %s %s", ev.ID, esc.EventID, pool.EventID)
			}
			if esc.TotalAmount != 0 || esc.Balance != 0 || esc.ReleasedAmount != 0 {
				t.Fatalf("escrow not empty: %+v", esc)
			}
		}).
		Return(nil)

	svc := NewRegistryUseCase(events, 100)

	ev, err := svc.CreateEvent(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("CreateEvent error: %v", err)
	}
	if ev.ID == "" || ev.ID != stored.ID {
		t.Fatalf("event id not assigned: %q vs %q", ev.ID, stored.ID)
	}
	if !ev.IsActive || ev.IsFunded || ev.IsCancelled {
		t.Fatalf("wrong initial state: %+v", ev)
	}
	if ev.City != "Lagos" || ev.State != "Lagos" || ev.Country != "Nigeria" {
		t.Fatalf("location not resolved: %s/%s/%s", ev.City, ev.State, ev.Country)
	}
	if ev.MinContribution != 100 {
		t.Fatalf("min contribution not stamped: %d", ev.MinContribution)
	}
}

func TestCreateEventValidation(t *testing.T) {
	events := mocks.NewMockEventRepository(t)
	svc := NewRegistryUseCase(events, 100)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*port.CreateEventInput)
		wantErr error
	}{
		{"missing organizer", func(in *port.CreateEventInput) { in.Organizer = "" }, domain.ErrInvalidInput},
		{"missing name", func(in *port.CreateEventInput) { in.Name = "" }, domain.ErrInvalidInput},
		{"zero target", func(in *port.CreateEventInput) { in.TargetAmount = 0 }, domain.ErrInvalidAmount},
		{"negative target", func(in *port.CreateEventInput) { in.TargetAmount = -5 }, domain.ErrInvalidAmount},
		{"zero ticket price", func(in *port.CreateEventInput) { in.TicketPrice = 0 }, domain.ErrInvalidTicketPrice},
		{"zero capacity", func(in *port.CreateEventInput) { in.MaxTickets = 0 }, domain.ErrInvalidInput},
		{"past date", func(in *port.CreateEventInput) { in.EventDate = time.Now().Add(-time.Hour) }, domain.ErrEventDatePassed},
		{"bad category", func(in *port.CreateEventInput) { in.Category = "rave" }, domain.ErrInvalidInput},
		{"unknown city", func(in *port.CreateEventInput) { in.Location = "Narnia" }, domain.ErrUnrecognizedLocation},
	}
	for _, tt := range tests {
		in := validCreateInput()
		tt.mutate(&in)
		if _, err := svc.CreateEvent(ctx, in); !errors.Is(err, tt.wantErr) {
			t.Fatalf("%s: err = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

// TestFinalizeFunding checks the Active -> Funded transition. No caller
// identity is involved; the transition depends only on the ledger state.
func TestFinalizeFunding(t *testing.T) {
	events := mocks.NewMockEventRepository(t)

	funded := &domain.Event{ID: "e1", Organizer: "org-1", IsActive: true, TargetAmount: 1000, AmountRaised: 1000}
	events.EXPECT().GetEvent(mock.Anything, "e1").Return(funded, nil)
	events.EXPECT().MarkFunded(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", IsActive: true, IsFunded: true}, nil)

	svc := NewRegistryUseCase(events, 100)

	ev, err := svc.FinalizeFunding(context.Background(), "e1")
	if err != nil {
		t.Fatalf("FinalizeFunding error: %v", err)
	}
	if !ev.IsFunded {
		t.Fatal("event not marked funded")
	}
}

func TestFinalizeFundingBelowTarget(t *testing.T) {
	events := mocks.NewMockEventRepository(t)
	events.EXPECT().GetEvent(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", IsActive: true, TargetAmount: 1000, AmountRaised: 999}, nil)

	svc := NewRegistryUseCase(events, 100)

	if _, err := svc.FinalizeFunding(context.Background(), "e1"); !errors.Is(err, domain.ErrTargetNotReached) {
		t.Fatalf("err = %v, want ErrTargetNotReached", err)
	}
}

func TestFinalizeFundingTwice(t *testing.T) {
	events := mocks.NewMockEventRepository(t)
	events.EXPECT().GetEvent(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", IsActive: true, IsFunded: true, TargetAmount: 1000, AmountRaised: 1500}, nil)

	svc := NewRegistryUseCase(events, 100)

	if _, err := svc.FinalizeFunding(context.Background(), "e1"); !errors.Is(err, domain.ErrAlreadyFunded) {
		t.Fatalf("err = %v, want ErrAlreadyFunded", err)
	}
}

func TestCancelEvent(t *testing.T) {
	events := mocks.NewMockEventRepository(t)
	events.EXPECT().GetEvent(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", Organizer: "org-1", IsActive: true}, nil)
	events.EXPECT().MarkCancelled(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", IsCancelled: true}, nil)

	svc := NewRegistryUseCase(events, 100)

	ev, err := svc.CancelEvent(context.Background(), "e1", "org-1")
	if err != nil {
		t.Fatalf("CancelEvent error: %v", err)
	}
	if !ev.IsCancelled {
		t.Fatal("event not cancelled")
	}
}

func TestCancelEventGuards(t *testing.T) {
	tests := []struct {
		name    string
		event   domain.Event
		caller  string
		wantErr error
	}{
		{"not organizer", domain.Event{Organizer: "org-1", IsActive: true}, "org-2", domain.ErrNotOrganizer},
		{"already funded", domain.Event{Organizer: "org-1", IsFunded: true}, "org-1", domain.ErrCannotCancelFunded},
		{"already cancelled", domain.Event{Organizer: "org-1", IsCancelled: true}, "org-1", domain.ErrAlreadyCancelled},
	}
	for _, tt := range tests {
		events := mocks.NewMockEventRepository(t)
		ev := tt.event
		ev.ID = "e1"
		events.EXPECT().GetEvent(mock.Anything, "e1").Return(&ev, nil)

		svc := NewRegistryUseCase(events, 100)
		if _, err := svc.CancelEvent(context.Background(), "e1", tt.caller); !errors.Is(err, tt.wantErr) {
			t.Fatalf("%s: err = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestUpdateEvent(t *testing.T) {
	events := mocks.NewMockEventRepository(t)
	events.EXPECT().GetEvent(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", Organizer: "org-1", IsActive: true, Location: "Lagos", City: "Lagos", State: "Lagos"}, nil)
	events.EXPECT().UpdateEventInfo(mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

	svc := NewRegistryUseCase(events, 100)

	name := "Detty December"
	loc := "Transcorp Hilton, Abuja"
	cat := domain.CategoryFestival
	ev, err := svc.UpdateEvent(context.Background(), port.UpdateEventInput{
		EventID:  "e1",
		Caller:   "org-1",
		Name:     &name,
		Category: &cat,
		Location: &loc,
	})
	if err != nil {
		t.Fatalf("UpdateEvent error: %v", err)
	}
	if ev.Name != name {
		t.Fatalf("name not updated: %q", ev.Name)
	}
	if ev.Category != domain.CategoryFestival {
		t.Fatalf("category not updated: %q", ev.Category)
	}
	if ev.City != "Abuja" || ev.State != "FCT" {
		t.Fatalf("location not re-resolved: %s/%s", ev.City, ev.State)
	}
}

func TestUpdateEventBadCategory(t *testing.T) {
	events := mocks.NewMockEventRepository(t)
	events.EXPECT().GetEvent(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", Organizer: "org-1", IsActive: true}, nil)

	svc := NewRegistryUseCase(events, 100)

	cat := domain.EventCategory("rave")
	_, err := svc.UpdateEvent(context.Background(), port.UpdateEventInput{EventID: "e1", Caller: "org-1", Category: &cat})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestUpdateEventNotOrganizer(t *testing.T) {
	events := mocks.NewMockEventRepository(t)
	events.EXPECT().GetEvent(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", Organizer: "org-1", IsActive: true}, nil)

	svc := NewRegistryUseCase(events, 100)

	name := "x"
	_, err := svc.UpdateEvent(context.Background(), port.UpdateEventInput{EventID: "e1", Caller: "mallory", Name: &name})
	if !errors.Is(err, domain.ErrNotOrganizer) {
		t.Fatalf("err = %v, want ErrNotOrganizer", err)
	}
}

func TestSetPaused(t *testing.T) {
	events := mocks.NewMockEventRepository(t)
	events.EXPECT().GetEvent(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", Organizer: "org-1", IsActive: true}, nil)
	events.EXPECT().SetPaused(mock.Anything, "e1", true).
		Return(&domain.Event{ID: "e1", IsActive: true, IsPaused: true}, nil)

	svc := NewRegistryUseCase(events, 100)

	ev, err := svc.SetPaused(context.Background(), "e1", "org-1", true)
	if err != nil {
		t.Fatalf("SetPaused error: %v", err)
	}
	if !ev.IsPaused {
		t.Fatal("event not paused")
	}
}
