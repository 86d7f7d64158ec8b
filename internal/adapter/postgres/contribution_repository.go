package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gatherfi/internal/core/domain"
)

const contributionColumns = `event_id, backer, amount, voting_power, claimed_profits, refunded, created_at, updated_at`

func scanContribution(row pgx.Row) (*domain.Contribution, error) {
	var c domain.Contribution
	err := row.Scan(&c.EventID, &c.Backer, &c.Amount, &c.VotingPower,
		&c.ClaimedProfits, &c.Refunded, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ContributionRepository implements port.ContributionRepository. Monetary
// mutations lock the event and escrow rows and update contribution, escrow
// and event together, so amountRaised == escrow.totalAmount ==
// sum(contribution.amount) holds after every commit.
type ContributionRepository struct {
	pool *pgxpool.Pool
}

// NewContributionRepository returns a new repository instance.
func NewContributionRepository(pool *pgxpool.Pool) *ContributionRepository {
	return &ContributionRepository{pool: pool}
}

// GetContribution returns a backer's contribution.
func (r *ContributionRepository) GetContribution(ctx context.Context, eventID, backer string) (*domain.Contribution, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+contributionColumns+` FROM contributions
        WHERE event_id = $1 AND backer = $2`, eventID, backer)
	return scanContribution(row)
}

// GetEscrow returns the event's escrow.
func (r *ContributionRepository) GetEscrow(ctx context.Context, eventID string) (*domain.Escrow, error) {
	var esc domain.Escrow
	err := r.pool.QueryRow(ctx, `SELECT event_id, total_amount, balance, released_amount, created_at, updated_at
        FROM escrows WHERE event_id = $1`, eventID).
		Scan(&esc.EventID, &esc.TotalAmount, &esc.Balance, &esc.ReleasedAmount, &esc.CreatedAt, &esc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &esc, nil
}

// ApplyContribution credits amount to contribution, escrow and event in
// one serializable transaction. Lifecycle gates are re-checked on the
// locked event row.
func (r *ContributionRepository) ApplyContribution(ctx context.Context, eventID, backer string, amount int64) (*domain.Contribution, error) {
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

	// lock event
	var isActive, isFunded, isCancelled, isPaused bool
	err = tx.QueryRow(ctx, `SELECT is_active, is_funded, is_cancelled, is_paused
        FROM events WHERE id = $1 FOR UPDATE`, eventID).
		Scan(&isActive, &isFunded, &isCancelled, &isPaused)
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
	case isFunded:
		err = domain.ErrAlreadyFunded
	case !isActive:
		err = domain.ErrEventNotActive
	case isPaused:
		err = domain.ErrEventPaused
	}
	if err != nil {
		return nil, err
	}

	var newBacker bool
	err = tx.QueryRow(ctx, `INSERT INTO contributions (event_id, backer, amount, voting_power, claimed_profits, refunded, created_at, updated_at)
        VALUES ($1, $2, $3, $3, 0, FALSE, now(), now())
        ON CONFLICT (event_id, backer) DO UPDATE
            SET amount = contributions.amount + EXCLUDED.amount,
                voting_power = contributions.voting_power + EXCLUDED.amount,
                updated_at = now()
        RETURNING (xmax = 0)`, eventID, backer, amount).Scan(&newBacker)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `UPDATE escrows SET total_amount = total_amount + $1,
        balance = balance + $1, updated_at = now() WHERE event_id = $2`, amount, eventID)
	if err != nil {
		return nil, err
	}
	backerDelta := 0
	if newBacker {
		backerDelta = 1
	}
	_, err = tx.Exec(ctx, `UPDATE events SET amount_raised = amount_raised + $1,
        total_backers = total_backers + $2, updated_at = now() WHERE id = $3`,
		amount, backerDelta, eventID)
	if err != nil {
		return nil, err
	}
	err = recordTransfer(ctx, tx, eventID, domain.TransferDeposit, backer, amount)
	if err != nil {
		return nil, err
	}

	row := tx.QueryRow(ctx, `SELECT `+contributionColumns+` FROM contributions
        WHERE event_id = $1 AND backer = $2`, eventID, backer)
	c, err := scanContribution(row)
	return c, err
}

// ApplyRefund pays back the backer's full amount on a cancelled event and
// latches the contribution as refunded. Escrow totals and amountRaised
// shrink by the same quantity, the only path on which amountRaised may
// decrease.
func (r *ContributionRepository) ApplyRefund(ctx context.Context, eventID, backer string) (*domain.Contribution, error) {
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

	var isCancelled bool
	err = tx.QueryRow(ctx, `SELECT is_cancelled FROM events WHERE id = $1 FOR UPDATE`, eventID).
		Scan(&isCancelled)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if !isCancelled {
		err = domain.ErrNotCancelled
		return nil, err
	}

	row := tx.QueryRow(ctx, `SELECT `+contributionColumns+` FROM contributions
        WHERE event_id = $1 AND backer = $2 FOR UPDATE`, eventID, backer)
	c, err := scanContribution(row)
	if err != nil {
		return nil, err
	}
	if c.Refunded {
		err = domain.ErrAlreadyRefunded
		return nil, err
	}

	_, err = tx.Exec(ctx, `UPDATE contributions SET refunded = TRUE, updated_at = now()
        WHERE event_id = $1 AND backer = $2`, eventID, backer)
	if err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx, `UPDATE escrows SET total_amount = total_amount - $1,
        balance = balance - $1, updated_at = now() WHERE event_id = $2`, c.Amount, eventID)
	if err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx, `UPDATE events SET amount_raised = amount_raised - $1, updated_at = now()
        WHERE id = $2`, c.Amount, eventID)
	if err != nil {
		return nil, err
	}
	err = recordTransfer(ctx, tx, eventID, domain.TransferPayout, backer, c.Amount)
	if err != nil {
		return nil, err
	}
	c.Refunded = true
	return c, nil
}

// ListContributions returns all contributions for an event ordered by
// creation time.
func (r *ContributionRepository) ListContributions(ctx context.Context, eventID string) ([]domain.Contribution, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+contributionColumns+` FROM contributions
        WHERE event_id = $1 ORDER BY created_at`, eventID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Contribution, error) {
		var c domain.Contribution
		err := row.Scan(&c.EventID, &c.Backer, &c.Amount, &c.VotingPower,
			&c.ClaimedProfits, &c.Refunded, &c.CreatedAt, &c.UpdatedAt)
		return c, err
	})
}
