package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo events into the gatherfi database. Intended for local
// development only; every insert is ON CONFLICT DO NOTHING so reruns are
// harmless.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	type demo struct {
		name     string
		category string
		city     string
		state    string
		target   int64
		price    int64
		tickets  int32
	}
	demos := []demo{
		{"Lagos Island Concert", "concert", "Lagos", "Lagos", 5_000_000, 10_000, 500},
		{"Abuja Tech Meetup", "tech_meetup", "Abuja", "FCT", 1_000_000, 5_000, 200},
		{"Ibadan Owambe Night", "owambe", "Ibadan", "Oyo", 2_500_000, 7_500, 300},
	}

	for i, d := range demos {
		id := fmt.Sprintf("seed-event-%d", i+1)
		organizer := fmt.Sprintf("organizer-%d", i+1)
		eventDate := time.Now().AddDate(0, 2, 0)
		_, err := pool.Exec(ctx, `INSERT INTO events
    (id, organizer, name, description, category, target_amount, min_contribution,
     ticket_price, max_tickets, event_date, location, city, state, country, is_active)
VALUES ($1,$2,$3,$4,$5,$6,100,$7,$8,$9,$10,$11,$12,'Nigeria',TRUE) ON CONFLICT DO NOTHING`,
			id, organizer, d.name, "Demo event seeded for development", d.category,
			d.target, d.price, d.tickets, eventDate,
			fmt.Sprintf("%s, %s State", d.city, d.state), d.city, d.state)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx, `INSERT INTO escrows (event_id) VALUES ($1) ON CONFLICT DO NOTHING`, id)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx, `INSERT INTO profit_pools (event_id) VALUES ($1) ON CONFLICT DO NOTHING`, id)
		if err != nil {
			return err
		}

		// a couple of backers per event, mirrored into escrow and the event
		for j := 1; j <= 3; j++ {
			backer := fmt.Sprintf("backer-%d-%d", i+1, j)
			amount := int64(j) * 50_000
			tag, err := pool.Exec(ctx, `INSERT INTO contributions (event_id, backer, amount, voting_power)
VALUES ($1,$2,$3,$3) ON CONFLICT DO NOTHING`, id, backer, amount)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				continue
			}
			_, err = pool.Exec(ctx, `UPDATE escrows SET total_amount = total_amount + $1,
    balance = balance + $1 WHERE event_id = $2`, amount, id)
			if err != nil {
				return err
			}
			_, err = pool.Exec(ctx, `UPDATE events SET amount_raised = amount_raised + $1,
    total_backers = total_backers + 1 WHERE id = $2`, amount, id)
			if err != nil {
				return err
			}
			_, err = pool.Exec(ctx, `INSERT INTO transfers (id, event_id, direction, counterparty, amount)
VALUES ($1,$2,'deposit',$3,$4)`, uuid.NewString(), id, backer, amount)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
