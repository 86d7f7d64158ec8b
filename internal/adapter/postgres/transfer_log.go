package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gatherfi/internal/core/domain"
)

// recordTransfer appends one instructed value movement for the external
// payment rail. Monetary repository operations call it inside the
// transaction that applies the matching ledger mutation, so an instruction
// exists exactly when the mutation committed.
func recordTransfer(ctx context.Context, tx pgx.Tx, eventID, direction, counterparty string, amount int64) error {
	_, err := tx.Exec(ctx, `INSERT INTO transfers (id, event_id, direction, counterparty, amount, created_at)
        VALUES ($1,$2,$3,$4,$5,now())`, uuid.NewString(), eventID, direction, counterparty, amount)
	return err
}

// TransferLog implements port.TransferLedger over the transfers table.
type TransferLog struct {
	pool *pgxpool.Pool
}

// NewTransferLog returns a new transfer log.
func NewTransferLog(pool *pgxpool.Pool) *TransferLog {
	return &TransferLog{pool: pool}
}

// ListTransfers returns the event's transfer instructions, oldest first.
func (l *TransferLog) ListTransfers(ctx context.Context, eventID string) ([]domain.Transfer, error) {
	rows, err := l.pool.Query(ctx, `SELECT id, event_id, direction, counterparty, amount, created_at
        FROM transfers WHERE event_id = $1 ORDER BY created_at, id`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []domain.Transfer
	for rows.Next() {
		var t domain.Transfer
		if err := rows.Scan(&t.ID, &t.EventID, &t.Direction, &t.Counterparty, &t.Amount, &t.CreatedAt); err != nil {
			return nil, err
		}
		transfers = append(transfers, t)
	}
	return transfers, rows.Err()
}
