package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gatherfi/internal/core/domain"
)

const poolColumns = `event_id, total_revenue, total_expenses, net_profit, backer_share, organizer_share, platform_share, is_calculated, calculated_at, platform_withdrawn, created_at`

func scanPool(row pgx.Row) (*domain.ProfitPool, error) {
	var p domain.ProfitPool
	err := row.Scan(&p.EventID, &p.TotalRevenue, &p.TotalExpenses, &p.NetProfit,
		&p.BackerShare, &p.OrganizerShare, &p.PlatformShare,
		&p.IsCalculated, &p.CalculatedAt, &p.PlatformWithdrawn, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ProfitRepository implements port.ProfitRepository. Calculation and
// claims lock the pool row so the split happens exactly once and each
// backer is paid at most once.
type ProfitRepository struct {
	pool *pgxpool.Pool
}

// NewProfitRepository returns a new repository instance.
func NewProfitRepository(pool *pgxpool.Pool) *ProfitRepository {
	return &ProfitRepository{pool: pool}
}

// GetPool returns the event's profit pool.
func (r *ProfitRepository) GetPool(ctx context.Context, eventID string) (*domain.ProfitPool, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+poolColumns+` FROM profit_pools WHERE event_id = $1`, eventID)
	return scanPool(row)
}

// FinalizePool reads revenue and released escrow under locks, computes
// the exact 60/35/5 split and latches IsCalculated.
func (r *ProfitRepository) FinalizePool(ctx context.Context, eventID string) (*domain.ProfitPool, error) {
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

	var revenue int64
	var calculated bool
	err = tx.QueryRow(ctx, `SELECT total_revenue, is_calculated FROM profit_pools
        WHERE event_id = $1 FOR UPDATE`, eventID).Scan(&revenue, &calculated)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if calculated {
		err = domain.ErrAlreadyCalculated
		return nil, err
	}
	var expenses int64
	err = tx.QueryRow(ctx, `SELECT released_amount FROM escrows WHERE event_id = $1`, eventID).
		Scan(&expenses)
	if err != nil {
		return nil, err
	}

	net := domain.NetProfit(revenue, expenses)
	backer, organizer, platform := domain.SplitProfit(net)

	_, err = tx.Exec(ctx, `UPDATE profit_pools SET total_expenses = $1, net_profit = $2,
        backer_share = $3, organizer_share = $4, platform_share = $5,
        is_calculated = TRUE, calculated_at = now() WHERE event_id = $6`,
		expenses, net, backer, organizer, platform, eventID)
	if err != nil {
		return nil, err
	}
	p, err := scanPool(tx.QueryRow(ctx, `SELECT `+poolColumns+` FROM profit_pools WHERE event_id = $1`, eventID))
	return p, err
}

// ApplyClaim computes the backer's entitlement on locked rows, inserts
// the claim and credits the contribution's claimed profits. The claim's
// primary key rejects replays with domain.ErrAlreadyClaimed.
func (r *ProfitRepository) ApplyClaim(ctx context.Context, eventID, backer string) (*domain.ProfitClaim, error) {
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

	var backerShare int64
	var calculated bool
	err = tx.QueryRow(ctx, `SELECT backer_share, is_calculated FROM profit_pools
        WHERE event_id = $1 FOR UPDATE`, eventID).Scan(&backerShare, &calculated)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if !calculated {
		err = domain.ErrNotCalculated
		return nil, err
	}

	var contributed, amountRaised int64
	err = tx.QueryRow(ctx, `SELECT c.amount, e.amount_raised FROM contributions c
        JOIN events e ON e.id = c.event_id
        WHERE c.event_id = $1 AND c.backer = $2 FOR UPDATE OF c`, eventID, backer).
		Scan(&contributed, &amountRaised)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrNotBacker
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	entitlement := domain.ClaimEntitlement(backerShare, contributed, amountRaised)
	claim := domain.ProfitClaim{EventID: eventID, Backer: backer, Amount: entitlement}
	err = tx.QueryRow(ctx, `INSERT INTO profit_claims (event_id, backer, amount, claimed_at)
        VALUES ($1,$2,$3,now()) RETURNING claimed_at`, eventID, backer, entitlement).
		Scan(&claim.ClaimedAt)
	if err != nil {
		if isUniqueViolation(err) {
			err = domain.ErrAlreadyClaimed
		}
		return nil, err
	}
	_, err = tx.Exec(ctx, `UPDATE contributions SET claimed_profits = claimed_profits + $1, updated_at = now()
        WHERE event_id = $2 AND backer = $3`, entitlement, eventID, backer)
	if err != nil {
		return nil, err
	}
	// a tiny stake can floor to a zero entitlement; nothing to move then
	if entitlement > 0 {
		err = recordTransfer(ctx, tx, eventID, domain.TransferPayout, backer, entitlement)
		if err != nil {
			return nil, err
		}
	}
	return &claim, nil
}

// WithdrawPlatformShare pays the platform share to the recipient exactly
// once. The withdrawal flag is latched on the locked pool row.
func (r *ProfitRepository) WithdrawPlatformShare(ctx context.Context, eventID, recipient string) (*domain.ProfitPool, error) {
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

	var share int64
	var calculated, withdrawn bool
	err = tx.QueryRow(ctx, `SELECT platform_share, is_calculated, platform_withdrawn FROM profit_pools
        WHERE event_id = $1 FOR UPDATE`, eventID).Scan(&share, &calculated, &withdrawn)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if !calculated {
		err = domain.ErrNotCalculated
		return nil, err
	}
	if withdrawn {
		err = domain.ErrFeesWithdrawn
		return nil, err
	}

	_, err = tx.Exec(ctx, `UPDATE profit_pools SET platform_withdrawn = TRUE
        WHERE event_id = $1`, eventID)
	if err != nil {
		return nil, err
	}
	if share > 0 {
		err = recordTransfer(ctx, tx, eventID, domain.TransferPayout, recipient, share)
		if err != nil {
			return nil, err
		}
	}
	p, err := scanPool(tx.QueryRow(ctx, `SELECT `+poolColumns+` FROM profit_pools WHERE event_id = $1`, eventID))
	return p, err
}
