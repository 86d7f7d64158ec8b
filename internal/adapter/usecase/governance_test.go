package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"gatherfi/internal/core/domain"
	"gatherfi/internal/core/port"
	"gatherfi/internal/core/port/mocks"
)

func fundedEvent() *domain.Event {
	return &domain.Event{
		ID:           "e1",
		Organizer:    "org-1",
		TargetAmount: 10000,
		AmountRaised: 10000,
		IsActive:     true,
		IsFunded:     true,
	}
}

func budgetItems() []domain.BudgetItem {
	return []domain.BudgetItem{
		{Name: "venue", Amount: 6000, Category: domain.BudgetVenue},
		{Name: "sound", Amount: 4000, Category: domain.BudgetEquipment},
	}
}

func TestSubmitBudget(t *testing.T) {
	gov := mocks.NewMockGovernanceRepository(t)
	events := mocks.NewMockEventRepository(t)
	contributions := mocks.NewMockContributionRepository(t)

	events.EXPECT().GetEvent(mock.Anything, "e1").Return(fundedEvent(), nil)
	gov.EXPECT().
		SaveBudget(mock.Anything, mock.AnythingOfType("domain.Budget")).
		Run(func(ctx context.Context, b domain.Budget) {
			if len(b.Items) != 2 {
				t.Fatalf("items = %d, want 2", len(b.Items))
			}
			for i, it := range b.Items {
				if it.Index != int32(i) {
					t.Fatalf("item %d index = %d", i, it.Index)
				}
				if it.ReleasedAmount != 0 || it.IsPaid {
					t.Fatalf("item %d carries release state: %+v", i, it)
				}
			}
		}).
		Return(nil)

	svc := NewGovernanceUseCase(gov, events, contributions, 5000)

	b, err := svc.SubmitBudget(context.Background(), port.SubmitBudgetInput{
		EventID:     "e1",
		Organizer:   "org-1",
		Items:       budgetItems(),
		TotalAmount: 10000,
	})
	if err != nil {
		t.Fatalf("SubmitBudget error: %v", err)
	}
	if b.TotalAmount != 10000 {
		t.Fatalf("total = %d, want 10000", b.TotalAmount)
	}
}

func TestSubmitBudgetValidation(t *testing.T) {
	tests := []struct {
		name    string
		in      port.SubmitBudgetInput
		event   *domain.Event
		wantErr error
	}{
		{
			"not organizer",
			port.SubmitBudgetInput{EventID: "e1", Organizer: "mallory", Items: budgetItems(), TotalAmount: 10000},
			fundedEvent(),
			domain.ErrNotOrganizer,
		},
		{
			"not funded",
			port.SubmitBudgetInput{EventID: "e1", Organizer: "org-1", Items: budgetItems(), TotalAmount: 10000},
			&domain.Event{ID: "e1", Organizer: "org-1", IsActive: true},
			domain.ErrEventNotFunded,
		},
		{
			"empty items",
			port.SubmitBudgetInput{EventID: "e1", Organizer: "org-1", TotalAmount: 10000},
			fundedEvent(),
			domain.ErrInvalidInput,
		},
		{
			"total mismatch",
			port.SubmitBudgetInput{EventID: "e1", Organizer: "org-1", Items: budgetItems(), TotalAmount: 9000},
			fundedEvent(),
			domain.ErrBudgetTotalMismatch,
		},
		{
			"bad category",
			port.SubmitBudgetInput{
				EventID:   "e1",
				Organizer: "org-1",
				Items: []domain.BudgetItem{
					{Name: "misc", Amount: 10000, Category: "slush"},
				},
				TotalAmount: 10000,
			},
			fundedEvent(),
			domain.ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		gov := mocks.NewMockGovernanceRepository(t)
		events := mocks.NewMockEventRepository(t)
		contributions := mocks.NewMockContributionRepository(t)

		events.EXPECT().GetEvent(mock.Anything, "e1").Return(tt.event, nil)

		svc := NewGovernanceUseCase(gov, events, contributions, 5000)
		if _, err := svc.SubmitBudget(context.Background(), tt.in); !errors.Is(err, tt.wantErr) {
			t.Fatalf("%s: err = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

// TestVoteOnBudget checks that the vote carries the backer's full stake
// as voting power and the configured quorum reaches the repository.
func TestVoteOnBudget(t *testing.T) {
	gov := mocks.NewMockGovernanceRepository(t)
	events := mocks.NewMockEventRepository(t)
	contributions := mocks.NewMockContributionRepository(t)

	gov.EXPECT().GetBudget(mock.Anything, "e1").
		Return(&domain.Budget{EventID: "e1", TotalAmount: 10000}, nil)
	contributions.EXPECT().GetContribution(mock.Anything, "e1", "backer-1").
		Return(&domain.Contribution{EventID: "e1", Backer: "backer-1", Amount: 2500, VotingPower: 2500}, nil)
	gov.EXPECT().
		RecordVote(mock.Anything, mock.AnythingOfType("domain.Vote"), int64(5000)).
		Run(func(ctx context.Context, v domain.Vote, quorumBps int64) {
			if v.VotingPower != 2500 {
				t.Fatalf("voting power = %d, want 2500", v.VotingPower)
			}
			if !v.Approve {
				t.Fatal("approve flag lost")
			}
		}).
		Return(&domain.Budget{EventID: "e1", VotesFor: 2500}, nil)

	svc := NewGovernanceUseCase(gov, events, contributions, 5000)

	b, err := svc.VoteOnBudget(context.Background(), "e1", "backer-1", true)
	if err != nil {
		t.Fatalf("VoteOnBudget error: %v", err)
	}
	if b.VotesFor != 2500 {
		t.Fatalf("votesFor = %d, want 2500", b.VotesFor)
	}
}

func TestVoteOnBudgetNoBudget(t *testing.T) {
	gov := mocks.NewMockGovernanceRepository(t)
	events := mocks.NewMockEventRepository(t)
	contributions := mocks.NewMockContributionRepository(t)

	gov.EXPECT().GetBudget(mock.Anything, "e1").Return(nil, domain.ErrNotFound)

	svc := NewGovernanceUseCase(gov, events, contributions, 5000)

	if _, err := svc.VoteOnBudget(context.Background(), "e1", "backer-1", true); !errors.Is(err, domain.ErrBudgetNotFound) {
		t.Fatalf("err = %v, want ErrBudgetNotFound", err)
	}
}

func TestVoteOnBudgetNotBacker(t *testing.T) {
	gov := mocks.NewMockGovernanceRepository(t)
	events := mocks.NewMockEventRepository(t)
	contributions := mocks.NewMockContributionRepository(t)

	gov.EXPECT().GetBudget(mock.Anything, "e1").
		Return(&domain.Budget{EventID: "e1"}, nil)
	contributions.EXPECT().GetContribution(mock.Anything, "e1", "stranger").
		Return(nil, domain.ErrNotFound)

	svc := NewGovernanceUseCase(gov, events, contributions, 5000)

	if _, err := svc.VoteOnBudget(context.Background(), "e1", "stranger", true); !errors.Is(err, domain.ErrNotBacker) {
		t.Fatalf("err = %v, want ErrNotBacker", err)
	}
}

func TestVoteOnBudgetRefundedBacker(t *testing.T) {
	gov := mocks.NewMockGovernanceRepository(t)
	events := mocks.NewMockEventRepository(t)
	contributions := mocks.NewMockContributionRepository(t)

	gov.EXPECT().GetBudget(mock.Anything, "e1").
		Return(&domain.Budget{EventID: "e1"}, nil)
	contributions.EXPECT().GetContribution(mock.Anything, "e1", "backer-1").
		Return(&domain.Contribution{EventID: "e1", Backer: "backer-1", Amount: 500, Refunded: true}, nil)

	svc := NewGovernanceUseCase(gov, events, contributions, 5000)

	if _, err := svc.VoteOnBudget(context.Background(), "e1", "backer-1", true); !errors.Is(err, domain.ErrNotBacker) {
		t.Fatalf("err = %v, want ErrNotBacker", err)
	}
}

// TestVoteOnBudgetTwice checks that the double-vote rejection from the
// repository surfaces unchanged.
func TestVoteOnBudgetTwice(t *testing.T) {
	gov := mocks.NewMockGovernanceRepository(t)
	events := mocks.NewMockEventRepository(t)
	contributions := mocks.NewMockContributionRepository(t)

	gov.EXPECT().GetBudget(mock.Anything, "e1").
		Return(&domain.Budget{EventID: "e1"}, nil)
	contributions.EXPECT().GetContribution(mock.Anything, "e1", "backer-1").
		Return(&domain.Contribution{EventID: "e1", Backer: "backer-1", Amount: 500, VotingPower: 500}, nil)
	gov.EXPECT().
		RecordVote(mock.Anything, mock.AnythingOfType("domain.Vote"), int64(5000)).
		Return(nil, domain.ErrAlreadyVoted)

	svc := NewGovernanceUseCase(gov, events, contributions, 5000)

	if _, err := svc.VoteOnBudget(context.Background(), "e1", "backer-1", false); !errors.Is(err, domain.ErrAlreadyVoted) {
		t.Fatalf("err = %v, want ErrAlreadyVoted", err)
	}
}
