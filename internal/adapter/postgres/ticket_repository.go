package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gatherfi/internal/core/domain"
)

const ticketColumns = `event_id, number, owner, tier, zone, purchase_price, token, is_checked_in, checked_in_at, purchased_at`

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var t domain.Ticket
	err := row.Scan(&t.EventID, &t.Number, &t.Owner, &t.Tier, &t.Zone,
		&t.PurchasePrice, &t.Token, &t.IsCheckedIn, &t.CheckedInAt, &t.PurchasedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// TicketRepository implements port.TicketRepository. Minting locks the
// event row, so ticket numbers come from a single monotonic counter and
// ticketsSold can never pass maxTickets.
type TicketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository returns a new repository instance.
func NewTicketRepository(pool *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{pool: pool}
}

// MintTicket assigns the next sequential number, stores the ticket and
// feeds the purchase price into the profit pool in one transaction.
func (r *TicketRepository) MintTicket(ctx context.Context, t domain.Ticket) (*domain.Ticket, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	// lock event; the counter and the cap live on this row
	var sold, max int32
	var isFunded, isCancelled, isPaused bool
	err = tx.QueryRow(ctx, `SELECT tickets_sold, max_tickets, is_funded, is_cancelled, is_paused
        FROM events WHERE id = $1 FOR UPDATE`, t.EventID).
		Scan(&sold, &max, &isFunded, &isCancelled, &isPaused)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	switch {
	case isCancelled:
		err = domain.ErrAlreadyCancelled
	case !isFunded:
		err = domain.ErrEventNotFunded
	case isPaused:
		err = domain.ErrEventPaused
	case sold >= max:
		err = domain.ErrSoldOut
	}
	if err != nil {
		return nil, err
	}

	t.Number = sold + 1
	_, err = tx.Exec(ctx, `INSERT INTO tickets (`+ticketColumns+`)
        VALUES ($1,$2,$3,$4,$5,$6,$7,FALSE,NULL,$8)`,
		t.EventID, t.Number, t.Owner, t.Tier, t.Zone, t.PurchasePrice, t.Token, t.PurchasedAt)
	if err != nil {
		if isUniqueViolation(err) {
			err = domain.ErrAlreadyExists
		}
		return nil, err
	}
	_, err = tx.Exec(ctx, `UPDATE events SET tickets_sold = tickets_sold + 1, updated_at = now()
        WHERE id = $1`, t.EventID)
	if err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx, `UPDATE profit_pools SET total_revenue = total_revenue + $1
        WHERE event_id = $2`, t.PurchasePrice, t.EventID)
	if err != nil {
		return nil, err
	}
	// heavily discounted tiers can floor to zero; a zero transfer is a no-op
	if t.PurchasePrice > 0 {
		err = recordTransfer(ctx, tx, t.EventID, domain.TransferDeposit, t.Owner, t.PurchasePrice)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}

// GetTicket returns a ticket by event and number.
func (r *TicketRepository) GetTicket(ctx context.Context, eventID string, number int32) (*domain.Ticket, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets
        WHERE event_id = $1 AND number = $2`, eventID, number)
	return scanTicket(row)
}

// TransferTicket moves ownership when owner holds the ticket and it has
// not been used.
func (r *TicketRepository) TransferTicket(ctx context.Context, eventID string, number int32, owner, newOwner string) (*domain.Ticket, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE tickets SET owner = $1
        WHERE event_id = $2 AND number = $3 AND owner = $4 AND NOT is_checked_in`,
		newOwner, eventID, number, owner)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		t, err := r.GetTicket(ctx, eventID, number)
		if err != nil {
			return nil, err
		}
		if t.IsCheckedIn {
			return nil, domain.ErrAlreadyCheckedIn
		}
		return nil, domain.ErrNotTicketOwner
	}
	return r.GetTicket(ctx, eventID, number)
}

// CheckInTicket latches the check-in flag exactly once.
func (r *TicketRepository) CheckInTicket(ctx context.Context, eventID string, number int32) (*domain.Ticket, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE tickets SET is_checked_in = TRUE, checked_in_at = now()
        WHERE event_id = $1 AND number = $2 AND NOT is_checked_in`, eventID, number)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		if _, err = r.GetTicket(ctx, eventID, number); err != nil {
			return nil, err
		}
		return nil, domain.ErrAlreadyCheckedIn
	}
	return r.GetTicket(ctx, eventID, number)
}
