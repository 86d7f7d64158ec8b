package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"gatherfi/internal/core/domain"
	"gatherfi/internal/core/port/mocks"
)

func TestCalculateProfits(t *testing.T) {
	profits := mocks.NewMockProfitRepository(t)
	events := mocks.NewMockEventRepository(t)
	contributions := mocks.NewMockContributionRepository(t)

	events.EXPECT().GetEvent(mock.Anything, "e1").Return(fundedEvent(), nil)
	profits.EXPECT().GetPool(mock.Anything, "e1").
		Return(&domain.ProfitPool{EventID: "e1", TotalRevenue: 50000}, nil)
	profits.EXPECT().FinalizePool(mock.Anything, "e1").
		Return(&domain.ProfitPool{
			EventID:        "e1",
			TotalRevenue:   50000,
			TotalExpenses:  20000,
			NetProfit:      30000,
			BackerShare:    18000,
			OrganizerShare: 10500,
			PlatformShare:  1500,
			IsCalculated:   true,
		}, nil)

	svc := NewProfitUseCase(profits, events, contributions, "gatherfi-platform")

	pool, err := svc.CalculateProfits(context.Background(), "e1", "org-1")
	if err != nil {
		t.Fatalf("CalculateProfits error: %v", err)
	}
	if !pool.IsCalculated {
		t.Fatal("pool not latched as calculated")
	}
	if pool.BackerShare+pool.OrganizerShare+pool.PlatformShare != pool.NetProfit {
		t.Fatalf("shares do not sum to net profit: %+v", pool)
	}
}

func TestCalculateProfitsNotOrganizer(t *testing.T) {
	profits := mocks.NewMockProfitRepository(t)
	events := mocks.NewMockEventRepository(t)
	contributions := mocks.NewMockContributionRepository(t)

	events.EXPECT().GetEvent(mock.Anything, "e1").Return(fundedEvent(), nil)

	svc := NewProfitUseCase(profits, events, contributions, "gatherfi-platform")

	if _, err := svc.CalculateProfits(context.Background(), "e1", "mallory"); !errors.Is(err, domain.ErrNotOrganizer) {
		t.Fatalf("err = %v, want ErrNotOrganizer", err)
	}
}

// TestCalculateProfitsTwice checks idempotency by rejection: the second
// call fails without touching the pool.
func TestCalculateProfitsTwice(t *testing.T) {
	profits := mocks.NewMockProfitRepository(t)
	events := mocks.NewMockEventRepository(t)
	contributions := mocks.NewMockContributionRepository(t)

	events.EXPECT().GetEvent(mock.Anything, "e1").Return(fundedEvent(), nil)
	profits.EXPECT().GetPool(mock.Anything, "e1").
		Return(&domain.ProfitPool{EventID: "e1", IsCalculated: true}, nil)

	svc := NewProfitUseCase(profits, events, contributions, "gatherfi-platform")

	if _, err := svc.CalculateProfits(context.Background(), "e1", "org-1"); !errors.Is(err, domain.ErrAlreadyCalculated) {
		t.Fatalf("err = %v, want ErrAlreadyCalculated", err)
	}
}

// TestClaimProfits checks the payout path: one repository call applies
// the claim and its payout instruction for the exact entitlement.
func TestClaimProfits(t *testing.T) {
	profits := mocks.NewMockProfitRepository(t)
	events := mocks.NewMockEventRepository(t)
	contributions := mocks.NewMockContributionRepository(t)

	profits.EXPECT().GetPool(mock.Anything, "e1").
		Return(&domain.ProfitPool{EventID: "e1", IsCalculated: true, BackerShare: 18000}, nil)
	contributions.EXPECT().GetContribution(mock.Anything, "e1", "backer-1").
		Return(&domain.Contribution{EventID: "e1", Backer: "backer-1", Amount: 2500}, nil)
	profits.EXPECT().ApplyClaim(mock.Anything, "e1", "backer-1").
		Return(&domain.ProfitClaim{EventID: "e1", Backer: "backer-1", Amount: 4500}, nil)

	svc := NewProfitUseCase(profits, events, contributions, "gatherfi-platform")

	claim, err := svc.ClaimProfits(context.Background(), "e1", "backer-1")
	if err != nil {
		t.Fatalf("ClaimProfits error: %v", err)
	}
	if claim.Amount != 4500 {
		t.Fatalf("claim = %d, want 4500", claim.Amount)
	}
}

func TestClaimProfitsBeforeCalculation(t *testing.T) {
	profits := mocks.NewMockProfitRepository(t)
	events := mocks.NewMockEventRepository(t)
	contributions := mocks.NewMockContributionRepository(t)

	profits.EXPECT().GetPool(mock.Anything, "e1").
		Return(&domain.ProfitPool{EventID: "e1"}, nil)

	svc := NewProfitUseCase(profits, events, contributions, "gatherfi-platform")

	if _, err := svc.ClaimProfits(context.Background(), "e1", "backer-1"); !errors.Is(err, domain.ErrNotCalculated) {
		t.Fatalf("err = %v, want ErrNotCalculated", err)
	}
}

func TestClaimProfitsNotBacker(t *testing.T) {
	profits := mocks.NewMockProfitRepository(t)
	events := mocks.NewMockEventRepository(t)
	contributions := mocks.NewMockContributionRepository(t)

	profits.EXPECT().GetPool(mock.Anything, "e1").
		Return(&domain.ProfitPool{EventID: "e1", IsCalculated: true}, nil)
	contributions.EXPECT().GetContribution(mock.Anything, "e1", "stranger").
		Return(nil, domain.ErrNotFound)

	svc := NewProfitUseCase(profits, events, contributions, "gatherfi-platform")

	if _, err := svc.ClaimProfits(context.Background(), "e1", "stranger"); !errors.Is(err, domain.ErrNotBacker) {
		t.Fatalf("err = %v, want ErrNotBacker", err)
	}
}

// TestClaimProfitsReplay checks that the repository's double-claim
// rejection surfaces and nothing is paid twice.
func TestClaimProfitsReplay(t *testing.T) {
	profits := mocks.NewMockProfitRepository(t)
	events := mocks.NewMockEventRepository(t)
	contributions := mocks.NewMockContributionRepository(t)

	profits.EXPECT().GetPool(mock.Anything, "e1").
		Return(&domain.ProfitPool{EventID: "e1", IsCalculated: true}, nil)
	contributions.EXPECT().GetContribution(mock.Anything, "e1", "backer-1").
		Return(&domain.Contribution{EventID: "e1", Backer: "backer-1", Amount: 2500}, nil)
	profits.EXPECT().ApplyClaim(mock.Anything, "e1", "backer-1").
		Return(nil, domain.ErrAlreadyClaimed)

	svc := NewProfitUseCase(profits, events, contributions, "gatherfi-platform")

	if _, err := svc.ClaimProfits(context.Background(), "e1", "backer-1"); !errors.Is(err, domain.ErrAlreadyClaimed) {
		t.Fatalf("err = %v, want ErrAlreadyClaimed", err)
	}
}

// TestWithdrawFees checks the one-time platform payout after calculation.
func TestWithdrawFees(t *testing.T) {
	profits := mocks.NewMockProfitRepository(t)
	events := mocks.NewMockEventRepository(t)
	contributions := mocks.NewMockContributionRepository(t)

	profits.EXPECT().GetPool(mock.Anything, "e1").
		Return(&domain.ProfitPool{EventID: "e1", IsCalculated: true, PlatformShare: 1500}, nil)
	profits.EXPECT().WithdrawPlatformShare(mock.Anything, "e1", "gatherfi-platform").
		Return(&domain.ProfitPool{EventID: "e1", IsCalculated: true, PlatformShare: 1500, PlatformWithdrawn: true}, nil)

	svc := NewProfitUseCase(profits, events, contributions, "gatherfi-platform")

	pool, err := svc.WithdrawFees(context.Background(), "e1", "gatherfi-platform")
	if err != nil {
		t.Fatalf("WithdrawFees error: %v", err)
	}
	if !pool.PlatformWithdrawn {
		t.Fatal("withdrawal not latched")
	}
}

func TestWithdrawFeesNotPlatform(t *testing.T) {
	profits := mocks.NewMockProfitRepository(t)
	events := mocks.NewMockEventRepository(t)
	contributions := mocks.NewMockContributionRepository(t)

	svc := NewProfitUseCase(profits, events, contributions, "gatherfi-platform")

	if _, err := svc.WithdrawFees(context.Background(), "e1", "org-1"); !errors.Is(err, domain.ErrNotPlatform) {
		t.Fatalf("err = %v, want ErrNotPlatform", err)
	}
}

func TestWithdrawFeesBeforeCalculation(t *testing.T) {
	profits := mocks.NewMockProfitRepository(t)
	events := mocks.NewMockEventRepository(t)
	contributions := mocks.NewMockContributionRepository(t)

	profits.EXPECT().GetPool(mock.Anything, "e1").
		Return(&domain.ProfitPool{EventID: "e1"}, nil)

	svc := NewProfitUseCase(profits, events, contributions, "gatherfi-platform")

	if _, err := svc.WithdrawFees(context.Background(), "e1", "gatherfi-platform"); !errors.Is(err, domain.ErrNotCalculated) {
		t.Fatalf("err = %v, want ErrNotCalculated", err)
	}
}

// TestWithdrawFeesTwice checks the replay guard: a withdrawn pool rejects
// a second withdrawal before touching the repository again.
func TestWithdrawFeesTwice(t *testing.T) {
	profits := mocks.NewMockProfitRepository(t)
	events := mocks.NewMockEventRepository(t)
	contributions := mocks.NewMockContributionRepository(t)

	profits.EXPECT().GetPool(mock.Anything, "e1").
		Return(&domain.ProfitPool{EventID: "e1", IsCalculated: true, PlatformShare: 1500, PlatformWithdrawn: true}, nil)

	svc := NewProfitUseCase(profits, events, contributions, "gatherfi-platform")

	if _, err := svc.WithdrawFees(context.Background(), "e1", "gatherfi-platform"); !errors.Is(err, domain.ErrFeesWithdrawn) {
		t.Fatalf("err = %v, want ErrFeesWithdrawn", err)
	}
}
