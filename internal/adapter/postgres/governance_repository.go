package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gatherfi/internal/core/domain"
)

// GovernanceRepository implements port.GovernanceRepository. Vote inserts
// and milestone releases run in serializable transactions that lock the
// budget row, keeping tallies and escrow arithmetic exact under
// concurrent callers.
type GovernanceRepository struct {
	pool *pgxpool.Pool
}

// NewGovernanceRepository returns a new repository instance.
func NewGovernanceRepository(pool *pgxpool.Pool) *GovernanceRepository {
	return &GovernanceRepository{pool: pool}
}

// GetBudget returns the event's budget with its items.
func (r *GovernanceRepository) GetBudget(ctx context.Context, eventID string) (*domain.Budget, error) {
	return r.getBudget(ctx, r.pool, eventID)
}

// getBudget loads a budget through any pgx querier so transactional
// callers can reuse it.
func (r *GovernanceRepository) getBudget(ctx context.Context, q interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}, eventID string) (*domain.Budget, error) {
	var b domain.Budget
	err := q.QueryRow(ctx, `SELECT event_id, organizer, total_amount, votes_for, votes_against, is_approved, created_at, updated_at
        FROM budgets WHERE event_id = $1`, eventID).
		Scan(&b.EventID, &b.Organizer, &b.TotalAmount, &b.VotesFor, &b.VotesAgainst, &b.IsApproved, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, `SELECT idx, name, description, amount, vendor, category, released_amount, is_paid, paid_at
        FROM budget_items WHERE event_id = $1 ORDER BY idx`, eventID)
	if err != nil {
		return nil, err
	}
	b.Items, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BudgetItem, error) {
		var it domain.BudgetItem
		err := row.Scan(&it.Index, &it.Name, &it.Description, &it.Amount,
			&it.Vendor, &it.Category, &it.ReleasedAmount, &it.IsPaid, &it.PaidAt)
		return it, err
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// SaveBudget creates the budget or replaces it while unapproved. The
// replacement deletes prior items and votes; tallies restart from zero.
func (r *GovernanceRepository) SaveBudget(ctx context.Context, b domain.Budget) error {
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

	var approved bool
	err = tx.QueryRow(ctx, `SELECT is_approved FROM budgets WHERE event_id = $1 FOR UPDATE`, b.EventID).
		Scan(&approved)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		err = nil
	case err != nil:
		return err
	case approved:
		err = domain.ErrBudgetLocked
		return err
	}

	_, err = tx.Exec(ctx, `DELETE FROM votes WHERE event_id = $1`, b.EventID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `DELETE FROM budget_items WHERE event_id = $1`, b.EventID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO budgets (event_id, organizer, total_amount, votes_for, votes_against, is_approved, created_at, updated_at)
        VALUES ($1,$2,$3,0,0,FALSE,$4,$5)
        ON CONFLICT (event_id) DO UPDATE
            SET organizer = EXCLUDED.organizer, total_amount = EXCLUDED.total_amount,
                votes_for = 0, votes_against = 0, is_approved = FALSE, updated_at = EXCLUDED.updated_at`,
		b.EventID, b.Organizer, b.TotalAmount, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return err
	}
	for _, it := range b.Items {
		_, err = tx.Exec(ctx, `INSERT INTO budget_items (event_id, idx, name, description, amount, vendor, category, released_amount, is_paid, paid_at)
            VALUES ($1,$2,$3,$4,$5,$6,$7,0,FALSE,NULL)`,
			b.EventID, it.Index, it.Name, it.Description, it.Amount, it.Vendor, it.Category)
		if err != nil {
			return err
		}
	}
	// reset the tally mirror on the event
	_, err = tx.Exec(ctx, `UPDATE events SET votes_for = 0, votes_against = 0, updated_at = now()
        WHERE id = $1`, b.EventID)
	return err
}

// RecordVote inserts the vote exactly once, updates the tallies, mirrors
// them onto the event and latches approval per the quorum rule. Duplicate
// voters get domain.ErrAlreadyVoted from the primary key.
func (r *GovernanceRepository) RecordVote(ctx context.Context, v domain.Vote, quorumBps int64) (*domain.Budget, error) {
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

	// lock budget and event for the tally update
	var votesFor, votesAgainst int64
	var approved bool
	err = tx.QueryRow(ctx, `SELECT votes_for, votes_against, is_approved FROM budgets
        WHERE event_id = $1 FOR UPDATE`, v.EventID).Scan(&votesFor, &votesAgainst, &approved)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrBudgetNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	var amountRaised int64
	err = tx.QueryRow(ctx, `SELECT amount_raised FROM events WHERE id = $1 FOR UPDATE`, v.EventID).
		Scan(&amountRaised)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `INSERT INTO votes (event_id, voter, approve, voting_power, voted_at)
        VALUES ($1,$2,$3,$4,$5)`, v.EventID, v.Voter, v.Approve, v.VotingPower, v.VotedAt)
	if err != nil {
		if isUniqueViolation(err) {
			err = domain.ErrAlreadyVoted
		}
		return nil, err
	}

	if v.Approve {
		votesFor += v.VotingPower
	} else {
		votesAgainst += v.VotingPower
	}
	// approval is latched: later votes are recorded but cannot clear it
	if !approved {
		approved = domain.ApprovalReached(votesFor, votesAgainst, amountRaised, quorumBps)
	}

	_, err = tx.Exec(ctx, `UPDATE budgets SET votes_for = $1, votes_against = $2, is_approved = $3, updated_at = now()
        WHERE event_id = $4`, votesFor, votesAgainst, approved, v.EventID)
	if err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx, `UPDATE events SET votes_for = $1, votes_against = $2, updated_at = now()
        WHERE id = $3`, votesFor, votesAgainst, v.EventID)
	if err != nil {
		return nil, err
	}

	b, err := r.getBudget(ctx, tx, v.EventID)
	return b, err
}

// ApplyRelease debits escrow and accumulates the release against one
// budget item, marking it paid when its full amount is covered. All
// monetary guards run on locked rows; violations are rejected, never
// clamped.
func (r *GovernanceRepository) ApplyRelease(ctx context.Context, eventID string, itemIndex int32, amount int64) (*domain.Budget, error) {
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

	var organizer string
	var approved bool
	err = tx.QueryRow(ctx, `SELECT organizer, is_approved FROM budgets WHERE event_id = $1 FOR UPDATE`, eventID).
		Scan(&organizer, &approved)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrBudgetNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if !approved {
		err = domain.ErrBudgetNotApproved
		return nil, err
	}

	var itemAmount, released int64
	var isPaid bool
	err = tx.QueryRow(ctx, `SELECT amount, released_amount, is_paid FROM budget_items
        WHERE event_id = $1 AND idx = $2 FOR UPDATE`, eventID, itemIndex).
		Scan(&itemAmount, &released, &isPaid)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrInvalidMilestoneIndex
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if isPaid {
		err = domain.ErrMilestonePaid
		return nil, err
	}
	if amount > itemAmount-released {
		err = domain.ErrExceedsItemAmount
		return nil, err
	}

	var balance int64
	err = tx.QueryRow(ctx, `SELECT balance FROM escrows WHERE event_id = $1 FOR UPDATE`, eventID).
		Scan(&balance)
	if err != nil {
		return nil, err
	}
	if amount > balance {
		err = domain.ErrInsufficientEscrow
		return nil, err
	}

	_, err = tx.Exec(ctx, `UPDATE escrows SET balance = balance - $1,
        released_amount = released_amount + $1, updated_at = now() WHERE event_id = $2`, amount, eventID)
	if err != nil {
		return nil, err
	}
	released += amount
	nowPaid := released >= itemAmount
	_, err = tx.Exec(ctx, `UPDATE budget_items SET released_amount = $1, is_paid = $2,
        paid_at = CASE WHEN $2 THEN now() ELSE NULL END
        WHERE event_id = $3 AND idx = $4`, released, nowPaid, eventID, itemIndex)
	if err != nil {
		return nil, err
	}
	err = recordTransfer(ctx, tx, eventID, domain.TransferPayout, organizer, amount)
	if err != nil {
		return nil, err
	}

	b, err := r.getBudget(ctx, tx, eventID)
	return b, err
}
