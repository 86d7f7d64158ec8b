package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gatherfi/internal/core/domain"
	"gatherfi/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Each core component is exposed through its own usecase port;
// routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	registry   port.RegistryUseCase
	funding    port.FundingUseCase
	governance port.GovernanceUseCase
	milestones port.MilestoneUseCase
	ticketing  port.TicketingUseCase
	profits    port.ProfitUseCase
	logger     *slog.Logger
	router     chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	registry port.RegistryUseCase,
	funding port.FundingUseCase,
	governance port.GovernanceUseCase,
	milestones port.MilestoneUseCase,
	ticketing port.TicketingUseCase,
	profits port.ProfitUseCase,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		registry:   registry,
		funding:    funding,
		governance: governance,
		milestones: milestones,
		ticketing:  ticketing,
		profits:    profits,
		logger:     logger,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/events", h.handleCreateEvent)
		r.Route("/events/{eventID}", func(r chi.Router) {
			r.Get("/", h.handleGetEvent)
			r.Patch("/", h.handleUpdateEvent)
			r.Post("/finalize", h.handleFinalizeFunding)
			r.Post("/cancel", h.handleCancelEvent)
			r.Post("/pause", h.handlePauseEvent)
			r.Post("/resume", h.handleResumeEvent)

			r.Post("/contributions", h.handleContribute)
			r.Get("/contributions", h.handleListContributions)
			r.Post("/refunds", h.handleRefund)
			r.Get("/escrow", h.handleGetEscrow)
			r.Get("/transfers", h.handleListTransfers)

			r.Post("/budget", h.handleSubmitBudget)
			r.Get("/budget", h.handleGetBudget)
			r.Post("/budget/votes", h.handleVote)
			r.Post("/milestones/{index}/release", h.handleReleaseMilestone)

			r.Post("/tickets", h.handleMintTicket)
			r.Post("/tickets/{number}/checkin", h.handleCheckIn)
			r.Post("/tickets/{number}/transfer", h.handleTransferTicket)

			r.Post("/profits/calculate", h.handleCalculateProfits)
			r.Post("/profits/claims", h.handleClaimProfits)
			r.Post("/profits/fees", h.handleWithdrawFees)
			r.Get("/profits", h.handleGetPool)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// validationErrs map to 400: the caller must correct the input and retry.
var validationErrs = []error{
	domain.ErrInvalidInput,
	domain.ErrInvalidAmount,
	domain.ErrInvalidTicketPrice,
	domain.ErrEventDatePassed,
	domain.ErrUnrecognizedLocation,
	domain.ErrInsufficientContribution,
	domain.ErrBudgetTotalMismatch,
	domain.ErrInvalidMilestoneIndex,
}

// authErrs map to 403 and are never retried automatically.
var authErrs = []error{
	domain.ErrNotOrganizer,
	domain.ErrNotBacker,
	domain.ErrNotTicketOwner,
	domain.ErrNotPlatform,
}

// writeError translates domain failures into HTTP status codes. State and
// conservation errors are both permanent rejections of the specific call,
// reported as 409. Anything unrecognized is logged and hidden behind 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	for _, e := range validationErrs {
		if errors.Is(err, e) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	for _, e := range authErrs {
		if errors.Is(err, e) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
	}
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrBudgetNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrEventNotActive),
		errors.Is(err, domain.ErrEventNotFunded),
		errors.Is(err, domain.ErrAlreadyFunded),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrCannotCancelFunded),
		errors.Is(err, domain.ErrNotCancelled),
		errors.Is(err, domain.ErrEventPaused),
		errors.Is(err, domain.ErrTargetNotReached),
		errors.Is(err, domain.ErrBudgetLocked),
		errors.Is(err, domain.ErrBudgetNotApproved),
		errors.Is(err, domain.ErrAlreadyVoted),
		errors.Is(err, domain.ErrMilestonePaid),
		errors.Is(err, domain.ErrSoldOut),
		errors.Is(err, domain.ErrAlreadyCheckedIn),
		errors.Is(err, domain.ErrAlreadyCalculated),
		errors.Is(err, domain.ErrNotCalculated),
		errors.Is(err, domain.ErrAlreadyClaimed),
		errors.Is(err, domain.ErrFeesWithdrawn),
		errors.Is(err, domain.ErrAlreadyRefunded),
		errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrInsufficientEscrow),
		errors.Is(err, domain.ErrExceedsItemAmount):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON encodes v with the given status code.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// decode parses the request body into v, rejecting malformed JSON.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}
