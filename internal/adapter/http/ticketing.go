package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gatherfi/internal/core/domain"
)

type mintTicketRequest struct {
	Buyer string `json:"buyer"`
	Tier  string `json:"tier"`
	Zone  string `json:"zone"`
}

// handleMintTicket sells the next sequential ticket. Sales on unfunded
// events or past capacity produce 409; unknown tiers produce 400.
func (h *Handler) handleMintTicket(w http.ResponseWriter, r *http.Request) {
	var req mintTicketRequest
	if !decode(w, r, &req) {
		return
	}
	t, err := h.ticketing.MintTicket(r.Context(), chi.URLParam(r, "eventID"), req.Buyer, domain.TicketTier(req.Tier), req.Zone)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, t)
}

// ticketNumber parses the {number} path parameter.
func ticketNumber(w http.ResponseWriter, r *http.Request) (int32, bool) {
	n, err := strconv.ParseInt(chi.URLParam(r, "number"), 10, 32)
	if err != nil {
		http.Error(w, "invalid ticket number", http.StatusBadRequest)
		return 0, false
	}
	return int32(n), true
}

// handleCheckIn marks a ticket as used at the door.
func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	n, ok := ticketNumber(w, r)
	if !ok {
		return
	}
	var req callerRequest
	if !decode(w, r, &req) {
		return
	}
	t, err := h.ticketing.CheckIn(r.Context(), chi.URLParam(r, "eventID"), n, req.Caller)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, t)
}

type transferTicketRequest struct {
	Caller   string `json:"caller"`
	NewOwner string `json:"new_owner"`
}

// handleTransferTicket moves a ticket to a new owner.
func (h *Handler) handleTransferTicket(w http.ResponseWriter, r *http.Request) {
	n, ok := ticketNumber(w, r)
	if !ok {
		return
	}
	var req transferTicketRequest
	if !decode(w, r, &req) {
		return
	}
	t, err := h.ticketing.Transfer(r.Context(), chi.URLParam(r, "eventID"), n, req.Caller, req.NewOwner)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, t)
}
