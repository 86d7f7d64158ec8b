package domain

import "errors"

// Validation errors: the caller sent malformed or out-of-range input.
var (
	ErrInvalidInput             = errors.New("invalid input")
	ErrInvalidAmount            = errors.New("amount must be positive")
	ErrInvalidTicketPrice       = errors.New("invalid ticket price")
	ErrEventDatePassed          = errors.New("event date is not in the future")
	ErrUnrecognizedLocation     = errors.New("unrecognized location")
	ErrInsufficientContribution = errors.New("contribution below minimum")
	ErrBudgetTotalMismatch      = errors.New("budget total does not match item amounts")
	ErrInvalidMilestoneIndex    = errors.New("milestone index out of range")
)

// Authorization errors: the caller is not the party of record.
var (
	ErrNotOrganizer   = errors.New("caller is not the event organizer")
	ErrNotBacker      = errors.New("caller has no contribution on this event")
	ErrNotTicketOwner = errors.New("caller does not own this ticket")
	ErrNotPlatform    = errors.New("caller is not the platform account")
)

// State errors: the operation does not fit the entity's lifecycle state.
var (
	ErrEventNotActive     = errors.New("event is not active")
	ErrEventNotFunded     = errors.New("event is not funded")
	ErrAlreadyFunded      = errors.New("event is already funded")
	ErrAlreadyCancelled   = errors.New("event is already cancelled")
	ErrCannotCancelFunded = errors.New("cannot cancel a funded event")
	ErrNotCancelled       = errors.New("event is not cancelled")
	ErrEventPaused        = errors.New("event is paused")
	ErrTargetNotReached   = errors.New("funding target not reached")
	ErrBudgetNotFound     = errors.New("budget not submitted")
	ErrBudgetLocked       = errors.New("budget is already approved")
	ErrBudgetNotApproved  = errors.New("budget not approved")
	ErrAlreadyVoted       = errors.New("voter already voted on this budget")
	ErrMilestonePaid      = errors.New("milestone item already paid in full")
	ErrSoldOut            = errors.New("tickets sold out")
	ErrAlreadyCheckedIn   = errors.New("ticket already checked in")
	ErrAlreadyCalculated  = errors.New("profits already calculated")
	ErrNotCalculated      = errors.New("profits not calculated")
	ErrAlreadyClaimed     = errors.New("profits already claimed")
	ErrFeesWithdrawn      = errors.New("platform fees already withdrawn")
	ErrAlreadyRefunded    = errors.New("contribution already refunded")
	ErrAlreadyExists      = errors.New("record already exists")
	ErrNotFound           = errors.New("record not found")
)

// Conservation errors: applying the operation would break a ledger
// invariant. Never clamped, always rejected.
var (
	ErrInsufficientEscrow = errors.New("release exceeds escrow balance")
	ErrExceedsItemAmount  = errors.New("release exceeds budget item amount")
)
