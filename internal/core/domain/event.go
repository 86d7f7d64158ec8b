package domain

import "time"

// EventCategory classifies an event. The set mirrors the kinds of live
// events the platform funds.
type EventCategory string

const (
	CategoryOwambe      EventCategory = "owambe"
	CategoryConcert     EventCategory = "concert"
	CategoryTechMeetup  EventCategory = "tech_meetup"
	CategoryWedding     EventCategory = "wedding"
	CategoryChurchEvent EventCategory = "church_event"
	CategoryCampusEvent EventCategory = "campus_event"
	CategoryConference  EventCategory = "conference"
	CategoryFestival    EventCategory = "festival"
	CategorySports      EventCategory = "sports"
	CategoryOther       EventCategory = "other"
)

// Valid reports whether the category is one of the known values.
func (c EventCategory) Valid() bool {
	switch c {
	case CategoryOwambe, CategoryConcert, CategoryTechMeetup, CategoryWedding,
		CategoryChurchEvent, CategoryCampusEvent, CategoryConference,
		CategoryFestival, CategorySports, CategoryOther:
		return true
	}
	return false
}

// Event is a crowdfunded live event. All monetary fields are integers in
// the smallest currency unit.
type Event struct {
	ID          string
	Organizer   string
	Name        string
	Description string
	Category    EventCategory

	TargetAmount    int64
	AmountRaised    int64
	MinContribution int64

	TicketPrice int64
	TicketsSold int32
	MaxTickets  int32

	EventDate time.Time
	Location  string
	City      string
	State     string
	Country   string

	// At most one of IsFunded/IsCancelled is ever true.
	IsActive    bool
	IsFunded    bool
	IsCancelled bool
	IsPaused    bool

	// Governance mirrors, kept in sync with the budget tally for
	// external visibility.
	TotalBackers int32
	VotesFor     int64
	VotesAgainst int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
