package domain

import "time"

// TicketTier is a fixed, closed enumeration of ticket classes. Each tier
// scales the event's base ticket price by a percent multiplier.
type TicketTier string

const (
	TierStandard  TicketTier = "standard"
	TierElevated  TicketTier = "elevated"
	TierEarlyBird TicketTier = "earlybird"
	TierStudent   TicketTier = "student"
	TierGroup     TicketTier = "group"
	TierVVIP      TicketTier = "vvip"
	TierBackstage TicketTier = "backstage"
	TierTable     TicketTier = "table"
)

// tierMultipliers holds percent price multipliers per tier. Standard is
// face value, elevated is double.
var tierMultipliers = map[TicketTier]int64{
	TierStandard:  100,
	TierElevated:  200,
	TierEarlyBird: 80,
	TierStudent:   60,
	TierGroup:     150,
	TierVVIP:      300,
	TierBackstage: 500,
	TierTable:     1000,
}

// Valid reports whether the tier is part of the closed set.
func (t TicketTier) Valid() bool {
	_, ok := tierMultipliers[t]
	return ok
}

// TicketPrice returns the charge for a tier given the event's base price.
// Multipliers are percentages, so the division is by 100.
func TicketPrice(basePrice int64, tier TicketTier) int64 {
	return basePrice * tierMultipliers[tier] / 100
}

// Ticket is one admission credential. Numbers are sequential per event,
// strictly monotonic and never reused.
type Ticket struct {
	EventID       string
	Number        int32
	Owner         string
	Tier          TicketTier
	Zone          string
	PurchasePrice int64
	Token         string
	IsCheckedIn   bool
	CheckedInAt   *time.Time
	PurchasedAt   time.Time
}
