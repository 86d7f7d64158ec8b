package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type contributeRequest struct {
	Backer string `json:"backer"`
	Amount int64  `json:"amount"`
}

// handleContribute deposits into the event's escrow. Deposits below the
// event's minimum produce 400; contributions to funded, cancelled or
// paused events produce 409.
func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	var req contributeRequest
	if !decode(w, r, &req) {
		return
	}
	c, err := h.funding.Contribute(r.Context(), chi.URLParam(r, "eventID"), req.Backer, req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

type refundRequest struct {
	Backer string `json:"backer"`
}

// handleRefund pays back a backer's full contribution on a cancelled
// event. A second refund attempt produces 409.
func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
	var req refundRequest
	if !decode(w, r, &req) {
		return
	}
	c, err := h.funding.Refund(r.Context(), chi.URLParam(r, "eventID"), req.Backer)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleListContributions returns every contribution on an event.
func (h *Handler) handleListContributions(w http.ResponseWriter, r *http.Request) {
	cs, err := h.funding.ListContributions(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cs)
}

// handleListTransfers returns the event's transfer instructions, the
// feed the external payment rail settles from.
func (h *Handler) handleListTransfers(w http.ResponseWriter, r *http.Request) {
	ts, err := h.funding.ListTransfers(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ts)
}

// handleGetEscrow returns the escrow snapshot for an event.
func (h *Handler) handleGetEscrow(w http.ResponseWriter, r *http.Request) {
	esc, err := h.funding.GetEscrow(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, esc)
}
