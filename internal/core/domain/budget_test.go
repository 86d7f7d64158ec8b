package domain

import "testing"

func TestSumItems(t *testing.T) {
	items := []BudgetItem{
		{Name: "venue", Amount: 3},
		{Name: "sound", Amount: 1},
		{Name: "catering", Amount: 4},
	}
	if got := SumItems(items); got != 8 {
		t.Fatalf("SumItems = %d, want 8", got)
	}
	if got := SumItems(nil); got != 0 {
		t.Fatalf("SumItems(nil) = %d, want 0", got)
	}
}

func TestApprovalReached(t *testing.T) {
	tests := []struct {
		name         string
		votesFor     int64
		votesAgainst int64
		amountRaised int64
		quorumBps    int64
		want         bool
	}{
		{"no votes", 0, 0, 1000, 5000, false},
		{"tie fails", 500, 500, 1000, 5000, false},
		{"majority below quorum", 200, 100, 1000, 5000, false},
		{"majority at quorum", 300, 200, 1000, 5000, true},
		{"minority at quorum", 200, 300, 1000, 5000, false},
		{"unanimous tiny raise", 1, 0, 1, 5000, true},
		{"weighted 2 vs 1 over half", 2, 1, 4, 5000, true},
		{"weighted 1 vs 2 fails majority", 1, 2, 4, 5000, false},
		{"zero quorum needs only majority", 1, 0, 1000000, 0, true},
		{"full quorum requires everyone", 600, 300, 1000, 10000, false},
	}
	for _, tt := range tests {
		got := ApprovalReached(tt.votesFor, tt.votesAgainst, tt.amountRaised, tt.quorumBps)
		if got != tt.want {
			t.Fatalf("%s: ApprovalReached(%d, %d, %d, %d) = %v, want %v",
				tt.name, tt.votesFor, tt.votesAgainst, tt.amountRaised, tt.quorumBps, got, tt.want)
		}
	}
}

func TestBudgetCategoryValid(t *testing.T) {
	for _, c := range []BudgetCategory{
		BudgetVenue, BudgetCatering, BudgetEntertainment, BudgetLogistics,
		BudgetMarketing, BudgetStaff, BudgetEquipment, BudgetOther,
	} {
		if !c.Valid() {
			t.Fatalf("category %s should be valid", c)
		}
	}
	if BudgetCategory("bribes").Valid() {
		t.Fatal("unknown category accepted")
	}
}
