package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/lifecycle"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

const jobColumns = `
	id, kind, owner_id, restaurant_id,
	origin_lat, origin_lng, origin_addr,
	dest_lat, dest_lng, dest_addr,
	distance_km, vehicle_class, status, pricing_model,
	proposed_price, suggested_min, suggested_max, final_price, surge,
	assigned_offer_id, assigned_provider_id, assigned_amount, assigned_at, otp,
	bidding_closes_at, cancel_reason, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, jobEntity *entities.Job) error {
	m := FromDomain(jobEntity)

	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		m.ID, m.Kind, m.OwnerID, m.RestaurantID,
		m.OriginLat, m.OriginLng, m.OriginAddr,
		m.DestLat, m.DestLng, m.DestAddr,
		m.DistanceKm, m.VehicleClass, m.Status, m.PricingModel,
		m.ProposedPrice, m.SuggestedMin, m.SuggestedMax, m.FinalPrice, m.Surge,
		m.AssignedOfferID, m.AssignedProviderID, m.AssignedAmount, m.AssignedAt, m.OTP,
		m.BiddingClosesAt, m.CancelReason, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected job repository create error: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var m JobDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Kind, &m.OwnerID, &m.RestaurantID,
		&m.OriginLat, &m.OriginLng, &m.OriginAddr,
		&m.DestLat, &m.DestLng, &m.DestAddr,
		&m.DistanceKm, &m.VehicleClass, &m.Status, &m.PricingModel,
		&m.ProposedPrice, &m.SuggestedMin, &m.SuggestedMax, &m.FinalPrice, &m.Surge,
		&m.AssignedOfferID, &m.AssignedProviderID, &m.AssignedAmount, &m.AssignedAt, &m.OTP,
		&m.BiddingClosesAt, &m.CancelReason, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lifecycle.ErrJobNotFound
		}
		return nil, fmt.Errorf("unexpected job repository get error: %w", err)
	}

	timeline, err := r.getTimeline(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(&m, timeline), nil
}

// UpdateStatus is a compare-and-set on the status column: the write applies
// only while the job is still in the expected status.
func (r *Repository) UpdateStatus(ctx context.Context, jobID string, from, to entities.JobStatus) error {
	query := `
		UPDATE jobs
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	result, err := r.querier.Exec(ctx, query, to.String(), jobID, from.String())
	if err != nil {
		return fmt.Errorf("unexpected job repository update status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return lifecycle.ErrStatusConflict
	}
	return nil
}

// WriteAssignment records the winner and flips the job into its assigned
// status, guarded by the expected status and an empty assignment slot. Zero
// affected rows means another accept committed first.
func (r *Repository) WriteAssignment(ctx context.Context, jobID string, from, to entities.JobStatus, a entities.Assignment, otp string) error {
	builder := qb.
		Update("jobs").
		Set("status", to.String()).
		Set("assigned_offer_id", a.OfferID).
		Set("assigned_provider_id", a.ProviderID).
		Set("assigned_amount", a.Amount).
		Set("assigned_at", a.AcceptedAt).
		Set("final_price", a.Amount).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": jobID, "status": from.String()}).
		Where("assigned_offer_id IS NULL")

	if otp != "" {
		builder = builder.Set("otp", otp)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected job repository write assignment error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected job repository write assignment error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return lifecycle.ErrStatusConflict
	}
	return nil
}

func (r *Repository) AppendTimeline(ctx context.Context, jobID string, entry entities.TimelineEntry) error {
	query := `
		INSERT INTO job_timeline (job_id, status, at, note)
		VALUES ($1, $2, $3, $4)
	`

	var note *string
	if entry.Note != "" {
		note = &entry.Note
	}

	_, err := r.querier.Exec(ctx, query, jobID, entry.Status.String(), entry.At, note)
	if err != nil {
		return fmt.Errorf("unexpected job repository append timeline error: %w", err)
	}
	return nil
}

func (r *Repository) SetCancelReason(ctx context.Context, jobID, reason string) error {
	builder := qb.
		Update("jobs").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": jobID})

	if reason != "" {
		builder = builder.Set("cancel_reason", reason)
	} else {
		builder = builder.Set("cancel_reason", nil)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected job repository set cancel reason error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected job repository set cancel reason error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return lifecycle.ErrJobNotFound
	}
	return nil
}

func (r *Repository) SetBiddingWindow(ctx context.Context, jobID string, closesAt time.Time) error {
	query := `
		UPDATE jobs
		SET bidding_closes_at = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.querier.Exec(ctx, query, closesAt, jobID)
	if err != nil {
		return fmt.Errorf("unexpected job repository set bidding window error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return lifecycle.ErrJobNotFound
	}
	return nil
}

// CountActiveByKind feeds the demand side of the surge computation.
func (r *Repository) CountActiveByKind(ctx context.Context, kind entities.JobKind) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM jobs
		WHERE kind = $1 AND status NOT IN ('completed', 'delivered', 'cancelled')
	`

	var count int
	err := r.querier.QueryRow(ctx, query, string(kind)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected job repository count active error: %w", err)
	}
	return count, nil
}

// ListBiddingExpired returns delivery jobs whose bidding window has passed
// without an assignment.
func (r *Repository) ListBiddingExpired(ctx context.Context, now time.Time) ([]entities.Job, error) {
	query := `SELECT ` + jobColumns + `
		FROM jobs
		WHERE status = 'bidding_open'
		  AND bidding_closes_at IS NOT NULL
		  AND bidding_closes_at <= $1
		  AND assigned_offer_id IS NULL
	`

	rows, err := r.querier.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("unexpected job repository list bidding expired error: %w", err)
	}
	defer rows.Close()

	var out []entities.Job
	for rows.Next() {
		var m JobDB
		err := rows.Scan(
			&m.ID, &m.Kind, &m.OwnerID, &m.RestaurantID,
			&m.OriginLat, &m.OriginLng, &m.OriginAddr,
			&m.DestLat, &m.DestLng, &m.DestAddr,
			&m.DistanceKm, &m.VehicleClass, &m.Status, &m.PricingModel,
			&m.ProposedPrice, &m.SuggestedMin, &m.SuggestedMax, &m.FinalPrice, &m.Surge,
			&m.AssignedOfferID, &m.AssignedProviderID, &m.AssignedAmount, &m.AssignedAt, &m.OTP,
			&m.BiddingClosesAt, &m.CancelReason, &m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected job repository list bidding expired scan error: %w", err)
		}
		out = append(out, *ToDomain(&m, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected job repository list bidding expired rows error: %w", err)
	}
	return out, nil
}

func (r *Repository) getTimeline(ctx context.Context, jobID string) ([]TimelineEntryDB, error) {
	query := `
		SELECT job_id, status, at, note
		FROM job_timeline
		WHERE job_id = $1
		ORDER BY at ASC, id ASC
	`

	rows, err := r.querier.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("unexpected job repository timeline error: %w", err)
	}
	defer rows.Close()

	var out []TimelineEntryDB
	for rows.Next() {
		var e TimelineEntryDB
		if err := rows.Scan(&e.JobID, &e.Status, &e.At, &e.Note); err != nil {
			return nil, fmt.Errorf("unexpected job repository timeline scan error: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected job repository timeline rows error: %w", err)
	}
	return out, nil
}
