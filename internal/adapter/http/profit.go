package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleCalculateProfits computes the 60/35/5 split exactly once. A
// second call produces 409.
func (h *Handler) handleCalculateProfits(w http.ResponseWriter, r *http.Request) {
	var req callerRequest
	if !decode(w, r, &req) {
		return
	}
	p, err := h.profits.CalculateProfits(r.Context(), chi.URLParam(r, "eventID"), req.Caller)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

type claimRequest struct {
	Backer string `json:"backer"`
}

// handleClaimProfits pays out a backer's proportional share. Replayed
// claims produce 409 and do not pay twice.
func (h *Handler) handleClaimProfits(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if !decode(w, r, &req) {
		return
	}
	c, err := h.profits.ClaimProfits(r.Context(), chi.URLParam(r, "eventID"), req.Backer)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

// handleWithdrawFees pays the platform share to the platform account.
// Only the platform account itself may call it, and only once.
func (h *Handler) handleWithdrawFees(w http.ResponseWriter, r *http.Request) {
	var req callerRequest
	if !decode(w, r, &req) {
		return
	}
	p, err := h.profits.WithdrawFees(r.Context(), chi.URLParam(r, "eventID"), req.Caller)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

// handleGetPool returns the profit pool snapshot for an event.
func (h *Handler) handleGetPool(w http.ResponseWriter, r *http.Request) {
	p, err := h.profits.GetPool(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}
