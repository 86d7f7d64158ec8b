package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gatherfi/internal/core/domain"
	"gatherfi/internal/core/port"
)

type budgetItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Vendor      string `json:"vendor"`
	Category    string `json:"category"`
}

type submitBudgetRequest struct {
	Organizer   string              `json:"organizer"`
	Items       []budgetItemRequest `json:"items"`
	TotalAmount int64               `json:"total_amount"`
}

// handleSubmitBudget creates or replaces the event's budget. A declared
// total that does not match the item amounts produces 400; resubmission
// of an approved budget produces 409.
func (h *Handler) handleSubmitBudget(w http.ResponseWriter, r *http.Request) {
	var req submitBudgetRequest
	if !decode(w, r, &req) {
		return
	}
	items := make([]domain.BudgetItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.BudgetItem{
			Name:        it.Name,
			Description: it.Description,
			Amount:      it.Amount,
			Vendor:      it.Vendor,
			Category:    domain.BudgetCategory(it.Category),
		}
	}
	b, err := h.governance.SubmitBudget(r.Context(), port.SubmitBudgetInput{
		EventID:     chi.URLParam(r, "eventID"),
		Organizer:   req.Organizer,
		Items:       items,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, b)
}

// handleGetBudget returns the budget snapshot with its items.
func (h *Handler) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	b, err := h.governance.GetBudget(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

type voteRequest struct {
	Voter   string `json:"voter"`
	Approve bool   `json:"approve"`
}

// handleVote records a backer's weighted vote. Double votes produce 409;
// voters without a contribution produce 403.
func (h *Handler) handleVote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if !decode(w, r, &req) {
		return
	}
	b, err := h.governance.VoteOnBudget(r.Context(), chi.URLParam(r, "eventID"), req.Voter, req.Approve)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, b)
}

type releaseRequest struct {
	Caller string `json:"caller"`
	Amount int64  `json:"amount"`
}

// handleReleaseMilestone pays out part of the escrow against one approved
// budget item. Releases past the item amount or the escrow balance
// produce 409.
func (h *Handler) handleReleaseMilestone(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.ParseInt(chi.URLParam(r, "index"), 10, 32)
	if err != nil {
		http.Error(w, "invalid milestone index", http.StatusBadRequest)
		return
	}
	var req releaseRequest
	if !decode(w, r, &req) {
		return
	}
	b, err := h.milestones.ReleaseMilestone(r.Context(), chi.URLParam(r, "eventID"), req.Caller, int32(idx), req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}
