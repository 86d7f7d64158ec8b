package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"gatherfi/internal/core/domain"
	"gatherfi/internal/core/port/mocks"
)

func approvedBudget() *domain.Budget {
	return &domain.Budget{
		EventID:    "e1",
		Organizer:  "org-1",
		IsApproved: true,
		Items: []domain.BudgetItem{
			{Index: 0, Name: "venue", Amount: 6000, Category: domain.BudgetVenue},
			{Index: 1, Name: "sound", Amount: 4000, Category: domain.BudgetEquipment, ReleasedAmount: 1500},
		},
		TotalAmount: 10000,
	}
}

// TestReleaseMilestone checks a partial release: the repository applies
// the debit and the organizer payout instruction in one step.
func TestReleaseMilestone(t *testing.T) {
	gov := mocks.NewMockGovernanceRepository(t)
	events := mocks.NewMockEventRepository(t)

	events.EXPECT().GetEvent(mock.Anything, "e1").Return(fundedEvent(), nil)
	gov.EXPECT().GetBudget(mock.Anything, "e1").Return(approvedBudget(), nil)
	gov.EXPECT().
		ApplyRelease(mock.Anything, "e1", int32(0), int64(2000)).
		Return(approvedBudget(), nil)

	svc := NewMilestoneUseCase(gov, events)

	if _, err := svc.ReleaseMilestone(context.Background(), "e1", "org-1", 0, 2000); err != nil {
		t.Fatalf("ReleaseMilestone error: %v", err)
	}
}

// TestReleaseMilestoneRemainder checks that a release may cover exactly
// the item's remaining amount after earlier partial releases.
func TestReleaseMilestoneRemainder(t *testing.T) {
	gov := mocks.NewMockGovernanceRepository(t)
	events := mocks.NewMockEventRepository(t)

	events.EXPECT().GetEvent(mock.Anything, "e1").Return(fundedEvent(), nil)
	gov.EXPECT().GetBudget(mock.Anything, "e1").Return(approvedBudget(), nil)
	// item 1 has 4000 total, 1500 already released, 2500 left
	gov.EXPECT().
		ApplyRelease(mock.Anything, "e1", int32(1), int64(2500)).
		Return(approvedBudget(), nil)

	svc := NewMilestoneUseCase(gov, events)

	if _, err := svc.ReleaseMilestone(context.Background(), "e1", "org-1", 1, 2500); err != nil {
		t.Fatalf("ReleaseMilestone error: %v", err)
	}
}

func TestReleaseMilestoneOverdraw(t *testing.T) {
	gov := mocks.NewMockGovernanceRepository(t)
	events := mocks.NewMockEventRepository(t)

	events.EXPECT().GetEvent(mock.Anything, "e1").Return(fundedEvent(), nil)
	gov.EXPECT().GetBudget(mock.Anything, "e1").Return(approvedBudget(), nil)

	svc := NewMilestoneUseCase(gov, events)

	// 2501 exceeds item 1's remaining 2500; rejected, never clamped.
	if _, err := svc.ReleaseMilestone(context.Background(), "e1", "org-1", 1, 2501); !errors.Is(err, domain.ErrExceedsItemAmount) {
		t.Fatalf("err = %v, want ErrExceedsItemAmount", err)
	}
}

func TestReleaseMilestonePaidItem(t *testing.T) {
	gov := mocks.NewMockGovernanceRepository(t)
	events := mocks.NewMockEventRepository(t)

	b := approvedBudget()
	b.Items[0].ReleasedAmount = b.Items[0].Amount
	b.Items[0].IsPaid = true

	events.EXPECT().GetEvent(mock.Anything, "e1").Return(fundedEvent(), nil)
	gov.EXPECT().GetBudget(mock.Anything, "e1").Return(b, nil)

	svc := NewMilestoneUseCase(gov, events)

	if _, err := svc.ReleaseMilestone(context.Background(), "e1", "org-1", 0, 1); !errors.Is(err, domain.ErrMilestonePaid) {
		t.Fatalf("err = %v, want ErrMilestonePaid", err)
	}
}

func TestReleaseMilestoneGuards(t *testing.T) {
	t.Run("not organizer", func(t *testing.T) {
		gov := mocks.NewMockGovernanceRepository(t)
		events := mocks.NewMockEventRepository(t)

		events.EXPECT().GetEvent(mock.Anything, "e1").Return(fundedEvent(), nil)

		svc := NewMilestoneUseCase(gov, events)
		if _, err := svc.ReleaseMilestone(context.Background(), "e1", "mallory", 0, 100); !errors.Is(err, domain.ErrNotOrganizer) {
			t.Fatalf("err = %v, want ErrNotOrganizer", err)
		}
	})

	t.Run("zero amount", func(t *testing.T) {
		gov := mocks.NewMockGovernanceRepository(t)
		events := mocks.NewMockEventRepository(t)

		events.EXPECT().GetEvent(mock.Anything, "e1").Return(fundedEvent(), nil)

		svc := NewMilestoneUseCase(gov, events)
		if _, err := svc.ReleaseMilestone(context.Background(), "e1", "org-1", 0, 0); !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("err = %v, want ErrInvalidAmount", err)
		}
	})

	t.Run("unapproved budget", func(t *testing.T) {
		gov := mocks.NewMockGovernanceRepository(t)
		events := mocks.NewMockEventRepository(t)

		b := approvedBudget()
		b.IsApproved = false
		events.EXPECT().GetEvent(mock.Anything, "e1").Return(fundedEvent(), nil)
		gov.EXPECT().GetBudget(mock.Anything, "e1").Return(b, nil)

		svc := NewMilestoneUseCase(gov, events)
		if _, err := svc.ReleaseMilestone(context.Background(), "e1", "org-1", 0, 100); !errors.Is(err, domain.ErrBudgetNotApproved) {
			t.Fatalf("err = %v, want ErrBudgetNotApproved", err)
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		gov := mocks.NewMockGovernanceRepository(t)
		events := mocks.NewMockEventRepository(t)

		events.EXPECT().GetEvent(mock.Anything, "e1").Return(fundedEvent(), nil)
		gov.EXPECT().GetBudget(mock.Anything, "e1").Return(approvedBudget(), nil)

		svc := NewMilestoneUseCase(gov, events)
		if _, err := svc.ReleaseMilestone(context.Background(), "e1", "org-1", 2, 100); !errors.Is(err, domain.ErrInvalidMilestoneIndex) {
			t.Fatalf("err = %v, want ErrInvalidMilestoneIndex", err)
		}
	})

	t.Run("no budget", func(t *testing.T) {
		gov := mocks.NewMockGovernanceRepository(t)
		events := mocks.NewMockEventRepository(t)

		events.EXPECT().GetEvent(mock.Anything, "e1").Return(fundedEvent(), nil)
		gov.EXPECT().GetBudget(mock.Anything, "e1").Return(nil, domain.ErrNotFound)

		svc := NewMilestoneUseCase(gov, events)
		if _, err := svc.ReleaseMilestone(context.Background(), "e1", "org-1", 0, 100); !errors.Is(err, domain.ErrBudgetNotFound) {
			t.Fatalf("err = %v, want ErrBudgetNotFound", err)
		}
	})
}

// TestReleaseMilestoneInsufficientEscrow checks that the repository's
// escrow guard surfaces and nothing is paid out.
func TestReleaseMilestoneInsufficientEscrow(t *testing.T) {
	gov := mocks.NewMockGovernanceRepository(t)
	events := mocks.NewMockEventRepository(t)

	events.EXPECT().GetEvent(mock.Anything, "e1").Return(fundedEvent(), nil)
	gov.EXPECT().GetBudget(mock.Anything, "e1").Return(approvedBudget(), nil)
	gov.EXPECT().
		ApplyRelease(mock.Anything, "e1", int32(0), int64(2000)).
		Return(nil, domain.ErrInsufficientEscrow)

	svc := NewMilestoneUseCase(gov, events)

	if _, err := svc.ReleaseMilestone(context.Background(), "e1", "org-1", 0, 2000); !errors.Is(err, domain.ErrInsufficientEscrow) {
		t.Fatalf("err = %v, want ErrInsufficientEscrow", err)
	}
}
