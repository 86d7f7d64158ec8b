package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gatherfi/internal/core/domain"
)

// uniqueViolation is the Postgres error code for duplicate keys. Composite
// primary keys carry the "already exists" rejection semantics.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

const eventColumns = `id, organizer, name, description, category, target_amount, amount_raised,
        min_contribution, ticket_price, tickets_sold, max_tickets, event_date,
        location, city, state, country, is_active, is_funded, is_cancelled, is_paused,
        total_backers, votes_for, votes_against, created_at, updated_at`

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var ev domain.Event
	err := row.Scan(
		&ev.ID, &ev.Organizer, &ev.Name, &ev.Description, &ev.Category,
		&ev.TargetAmount, &ev.AmountRaised, &ev.MinContribution,
		&ev.TicketPrice, &ev.TicketsSold, &ev.MaxTickets, &ev.EventDate,
		&ev.Location, &ev.City, &ev.State, &ev.Country,
		&ev.IsActive, &ev.IsFunded, &ev.IsCancelled, &ev.IsPaused,
		&ev.TotalBackers, &ev.VotesFor, &ev.VotesAgainst,
		&ev.CreatedAt, &ev.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// EventRepository implements port.EventRepository using pgxpool. Lifecycle
// transitions re-check their guards inside the transaction that applies
// them, so stale reads in the usecase layer cannot break the state machine.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository returns a new repository instance.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// CreateEvent stores a new event with its empty escrow and profit pool in
// one transaction.
func (r *EventRepository) CreateEvent(ctx context.Context, ev domain.Event, esc domain.Escrow, pool domain.ProfitPool) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO events (`+eventColumns+`)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25)`,
		ev.ID, ev.Organizer, ev.Name, ev.Description, ev.Category,
		ev.TargetAmount, ev.AmountRaised, ev.MinContribution,
		ev.TicketPrice, ev.TicketsSold, ev.MaxTickets, ev.EventDate,
		ev.Location, ev.City, ev.State, ev.Country,
		ev.IsActive, ev.IsFunded, ev.IsCancelled, ev.IsPaused,
		ev.TotalBackers, ev.VotesFor, ev.VotesAgainst, ev.CreatedAt, ev.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			err = domain.ErrAlreadyExists
		}
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO escrows (event_id, total_amount, balance, released_amount, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6)`,
		esc.EventID, esc.TotalAmount, esc.Balance, esc.ReleasedAmount, esc.CreatedAt, esc.UpdatedAt)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO profit_pools (event_id, total_revenue, total_expenses, net_profit,
        backer_share, organizer_share, platform_share, is_calculated, calculated_at, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		pool.EventID, pool.TotalRevenue, pool.TotalExpenses, pool.NetProfit,
		pool.BackerShare, pool.OrganizerShare, pool.PlatformShare,
		pool.IsCalculated, pool.CalculatedAt, pool.CreatedAt)
	return err
}

// GetEvent returns an event by id.
func (r *EventRepository) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	return scanEvent(row)
}

// UpdateEventInfo persists organizer-editable metadata.
func (r *EventRepository) UpdateEventInfo(ctx context.Context, ev *domain.Event) error {
	tag, err := r.pool.Exec(ctx, `UPDATE events SET name = $1, description = $2, category = $3,
        event_date = $4, location = $5, city = $6, state = $7, updated_at = $8
        WHERE id = $9 AND NOT is_cancelled`,
		ev.Name, ev.Description, ev.Category, ev.EventDate, ev.Location, ev.City, ev.State, ev.UpdatedAt, ev.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkFunded transitions Active -> Funded. The guard runs inside the
// UPDATE so a concurrent cancellation cannot interleave.
func (r *EventRepository) MarkFunded(ctx context.Context, eventID string) (*domain.Event, error) {
	return r.transition(ctx, eventID, `UPDATE events SET is_funded = TRUE, updated_at = now()
        WHERE id = $1 AND is_active AND NOT is_funded AND NOT is_cancelled AND amount_raised >= target_amount`,
		domain.ErrTargetNotReached)
}

// MarkCancelled transitions Active -> Cancelled and deactivates the event.
func (r *EventRepository) MarkCancelled(ctx context.Context, eventID string) (*domain.Event, error) {
	return r.transition(ctx, eventID, `UPDATE events SET is_cancelled = TRUE, is_active = FALSE, updated_at = now()
        WHERE id = $1 AND is_active AND NOT is_funded AND NOT is_cancelled`,
		domain.ErrAlreadyCancelled)
}

// SetPaused toggles the pause flag on an active event.
func (r *EventRepository) SetPaused(ctx context.Context, eventID string, paused bool) (*domain.Event, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE events SET is_paused = $1, updated_at = now()
        WHERE id = $2 AND is_active`, paused, eventID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrEventNotActive
	}
	return r.GetEvent(ctx, eventID)
}

// transition runs a guarded one-row UPDATE and returns stateErr when the
// guard rejected it, distinguishing a missing event from a wrong state.
func (r *EventRepository) transition(ctx context.Context, eventID, query string, stateErr error) (*domain.Event, error) {
	tag, err := r.pool.Exec(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		if _, err = r.GetEvent(ctx, eventID); err != nil {
			return nil, err
		}
		return nil, stateErr
	}
	return r.GetEvent(ctx, eventID)
}
