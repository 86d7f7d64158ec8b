package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"gatherfi/internal/core/domain"
	"gatherfi/internal/core/port"
)

type createEventRequest struct {
	Organizer    string    `json:"organizer"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	TargetAmount int64     `json:"target_amount"`
	TicketPrice  int64     `json:"ticket_price"`
	MaxTickets   int32     `json:"max_tickets"`
	EventDate    time.Time `json:"event_date"`
	Location     string    `json:"location"`
}

// handleCreateEvent registers a new event in state Active. The location
// must resolve to a recognized city; validation failures produce 400.
func (h *Handler) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if !decode(w, r, &req) {
		return
	}
	ev, err := h.registry.CreateEvent(r.Context(), port.CreateEventInput{
		Organizer:    req.Organizer,
		Name:         req.Name,
		Description:  req.Description,
		Category:     domain.EventCategory(req.Category),
		TargetAmount: req.TargetAmount,
		TicketPrice:  req.TicketPrice,
		MaxTickets:   req.MaxTickets,
		EventDate:    req.EventDate,
		Location:     req.Location,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, ev)
}

// handleGetEvent returns an event snapshot.
func (h *Handler) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	ev, err := h.registry.GetEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ev)
}

type updateEventRequest struct {
	Caller      string     `json:"caller"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	EventDate   *time.Time `json:"event_date"`
	Location    *string    `json:"location"`
}

// handleUpdateEvent applies organizer edits to event metadata. Omitted
// fields are left unchanged.
func (h *Handler) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req updateEventRequest
	if !decode(w, r, &req) {
		return
	}
	in := port.UpdateEventInput{
		EventID:     chi.URLParam(r, "eventID"),
		Caller:      req.Caller,
		Name:        req.Name,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
	}
	if req.Category != nil {
		cat := domain.EventCategory(*req.Category)
		in.Category = &cat
	}
	ev, err := h.registry.UpdateEvent(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ev)
}

type callerRequest struct {
	Caller string `json:"caller"`
}

// handleFinalizeFunding transitions an event to Funded once the target is
// reached. The transition depends only on the ledger state, so no caller
// identity is required.
func (h *Handler) handleFinalizeFunding(w http.ResponseWriter, r *http.Request) {
	ev, err := h.registry.FinalizeFunding(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ev)
}

// handleCancelEvent cancels an unfunded event, unlocking refunds.
func (h *Handler) handleCancelEvent(w http.ResponseWriter, r *http.Request) {
	var req callerRequest
	if !decode(w, r, &req) {
		return
	}
	ev, err := h.registry.CancelEvent(r.Context(), chi.URLParam(r, "eventID"), req.Caller)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ev)
}

// handlePauseEvent pauses contributions and ticket sales.
func (h *Handler) handlePauseEvent(w http.ResponseWriter, r *http.Request) {
	h.setPaused(w, r, true)
}

// handleResumeEvent resumes a paused event.
func (h *Handler) handleResumeEvent(w http.ResponseWriter, r *http.Request) {
	h.setPaused(w, r, false)
}

func (h *Handler) setPaused(w http.ResponseWriter, r *http.Request, paused bool) {
	var req callerRequest
	if !decode(w, r, &req) {
		return
	}
	ev, err := h.registry.SetPaused(r.Context(), chi.URLParam(r, "eventID"), req.Caller, paused)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ev)
}
