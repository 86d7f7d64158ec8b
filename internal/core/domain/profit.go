package domain

import "time"

// Split weights in basis points. Backers take 60%, the organizer 35% and
// the platform 5% of net profit.
const (
	BackerShareBps    = 6000
	OrganizerShareBps = 3500
	PlatformShareBps  = 500
)

// ProfitPool is the post-event accounting record for one event. Shares are
// computed exactly once; IsCalculated guards recomputation.
type ProfitPool struct {
	EventID        string
	TotalRevenue   int64
	TotalExpenses  int64
	NetProfit      int64
	BackerShare    int64
	OrganizerShare int64
	PlatformShare  int64
	IsCalculated   bool
	CalculatedAt   *time.Time
	// PlatformWithdrawn latches the one-time payout of the platform share.
	PlatformWithdrawn bool
	CreatedAt         time.Time
}

// ProfitClaim marks a backer's payout from a pool. Its existence is the
// idempotency guard against double payment.
type ProfitClaim struct {
	EventID   string
	Backer    string
	Amount    int64
	ClaimedAt time.Time
}

// SplitProfit divides netProfit by the fixed weights. The backer and
// organizer shares are floored; the platform share absorbs the remainder
// by subtraction so the three always sum to netProfit exactly.
func SplitProfit(netProfit int64) (backer, organizer, platform int64) {
	if netProfit <= 0 {
		return 0, 0, 0
	}
	backer = netProfit * BackerShareBps / 10000
	organizer = netProfit * OrganizerShareBps / 10000
	platform = netProfit - backer - organizer
	return backer, organizer, platform
}

// NetProfit is revenue minus expenses, floored at zero. A loss-making
// event distributes nothing.
func NetProfit(totalRevenue, totalExpenses int64) int64 {
	net := totalRevenue - totalExpenses
	if net < 0 {
		return 0
	}
	return net
}

// ClaimEntitlement computes a backer's cut of the backer share,
// proportional to their stake in the total raised.
func ClaimEntitlement(backerShare, contributed, amountRaised int64) int64 {
	if amountRaised == 0 {
		return 0
	}
	return backerShare * contributed / amountRaised
}
