package offer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/negotiation"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

const offerColumns = `id, job_id, bidder_id, amount, message, eta_minutes, status, created_at, expires_at`

// Create inserts a pending offer. The partial unique index on
// (job_id, bidder_id) WHERE status = 'pending' enforces one live offer per
// bidder per job.
func (r *Repository) Create(ctx context.Context, offerEntity entities.Offer) error {
	m := FromDomain(&offerEntity)

	query := `
		INSERT INTO offers (` + offerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		m.ID, m.JobID, m.BidderID, m.Amount, m.Message, m.EtaMinutes, m.Status, m.CreatedAt, m.ExpiresAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return negotiation.ErrDuplicateBidder
		}
		return fmt.Errorf("unexpected offer repository create error: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

	var m OfferDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.JobID, &m.BidderID, &m.Amount, &m.Message, &m.EtaMinutes, &m.Status, &m.CreatedAt, &m.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, negotiation.ErrOfferNotFound
		}
		return nil, fmt.Errorf("unexpected offer repository get error: %w", err)
	}

	return ToDomain(&m), nil
}

func (r *Repository) ListByJob(ctx context.Context, jobID string) ([]entities.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE job_id = $1 ORDER BY created_at ASC`

	rows, err := r.querier.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("unexpected offer repository list error: %w", err)
	}
	defer rows.Close()

	return scanOffers(rows)
}

// UpdateStatus flips an offer guarded by its expected current status.
func (r *Repository) UpdateStatus(ctx context.Context, offerID string, from, to entities.OfferStatus) error {
	query := `
		UPDATE offers
		SET status = $1
		WHERE id = $2 AND status = $3
	`

	result, err := r.querier.Exec(ctx, query, to.String(), offerID, from.String())
	if err != nil {
		return fmt.Errorf("unexpected offer repository update status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return negotiation.ErrOfferResolved
	}
	return nil
}

func (r *Repository) RejectPendingByJob(ctx context.Context, jobID, exceptOfferID string) (int64, error) {
	query := `
		UPDATE offers
		SET status = 'rejected'
		WHERE job_id = $1 AND id != $2 AND status = 'pending'
	`

	result, err := r.querier.Exec(ctx, query, jobID, exceptOfferID)
	if err != nil {
		return 0, fmt.Errorf("unexpected offer repository reject pending error: %w", err)
	}
	return result.RowsAffected(), nil
}

// ExpireDue marks pending offers past their deadline and returns them.
// Safe to call repeatedly, matched rows leave the pending state.
func (r *Repository) ExpireDue(ctx context.Context, now time.Time) ([]entities.Offer, error) {
	query := `
		UPDATE offers
		SET status = 'expired'
		WHERE status = 'pending' AND expires_at IS NOT NULL AND expires_at <= $1
		RETURNING ` + offerColumns

	rows, err := r.querier.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("unexpected offer repository expire due error: %w", err)
	}
	defer rows.Close()

	return scanOffers(rows)
}

func (r *Repository) CountPendingByJob(ctx context.Context, jobID string) (int, error) {
	query := `SELECT COUNT(*) FROM offers WHERE job_id = $1 AND status = 'pending'`

	var count int
	err := r.querier.QueryRow(ctx, query, jobID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected offer repository count pending error: %w", err)
	}
	return count, nil
}

func scanOffers(rows pgx.Rows) ([]entities.Offer, error) {
	var out []entities.Offer
	for rows.Next() {
		var m OfferDB
		err := rows.Scan(
			&m.ID, &m.JobID, &m.BidderID, &m.Amount, &m.Message, &m.EtaMinutes, &m.Status, &m.CreatedAt, &m.ExpiresAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected offer repository scan error: %w", err)
		}
		out = append(out, *ToDomain(&m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected offer repository rows error: %w", err)
	}
	return out, nil
}
