package domain

import "time"

// BudgetCategory classifies what a budget item pays for.
type BudgetCategory string

const (
	BudgetVenue         BudgetCategory = "venue"
	BudgetCatering      BudgetCategory = "catering"
	BudgetEntertainment BudgetCategory = "entertainment"
	BudgetLogistics     BudgetCategory = "logistics"
	BudgetMarketing     BudgetCategory = "marketing"
	BudgetStaff         BudgetCategory = "staff"
	BudgetEquipment     BudgetCategory = "equipment"
	BudgetOther         BudgetCategory = "other"
)

// Valid reports whether the category is one of the known values.
func (c BudgetCategory) Valid() bool {
	switch c {
	case BudgetVenue, BudgetCatering, BudgetEntertainment, BudgetLogistics,
		BudgetMarketing, BudgetStaff, BudgetEquipment, BudgetOther:
		return true
	}
	return false
}

// BudgetItem is one line of an event budget. ReleasedAmount accumulates
// partial milestone releases; IsPaid latches once ReleasedAmount reaches
// Amount.
type BudgetItem struct {
	Index          int32
	Name           string
	Description    string
	Amount         int64
	Vendor         string
	Category       BudgetCategory
	ReleasedAmount int64
	IsPaid         bool
	PaidAt         *time.Time
}

// Budget is the spending plan backers vote on. One per event; it may be
// resubmitted only while unapproved. TotalAmount == sum of item amounts.
type Budget struct {
	EventID      string
	Organizer    string
	Items        []BudgetItem
	TotalAmount  int64
	VotesFor     int64
	VotesAgainst int64
	IsApproved   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SumItems returns the total of the item amounts.
func SumItems(items []BudgetItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Amount
	}
	return total
}

// ApprovalReached evaluates the majority-plus-quorum rule: votesFor must
// strictly exceed votesAgainst and the combined tally must cover at least
// quorumBps basis points of amountRaised. The caller latches the result;
// once approved a budget never becomes unapproved again.
func ApprovalReached(votesFor, votesAgainst, amountRaised int64, quorumBps int64) bool {
	if votesFor <= votesAgainst {
		return false
	}
	// Multiply before dividing so small tallies are not rounded away.
	return (votesFor+votesAgainst)*10000 >= amountRaised*quorumBps
}

// Vote is an immutable record of one voter's choice on one budget. A second
// vote by the same voter is rejected, never overwritten.
type Vote struct {
	EventID     string
	Voter       string
	Approve     bool
	VotingPower int64
	VotedAt     time.Time
}
