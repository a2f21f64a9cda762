package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-desk/internal/core/domain"
)

// IDGenerator mints campaign identifiers.
type IDGenerator interface {
	New() (string, error)
}

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Insertion order is kept by the seq column.
type CampaignRepository struct {
	pool *pgxpool.Pool
	ids  IDGenerator
	now  func() time.Time
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool, ids IDGenerator) *CampaignRepository {
	return &CampaignRepository{pool: pool, ids: ids, now: time.Now}
}

const campaignColumns = `id, name, banner_reference, age_range, location, interests, ad_copy, status, created_at, updated_at`

// Create inserts the draft as a Pending campaign.
func (r *CampaignRepository) Create(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error) {
	id, err := r.ids.New()
	if err != nil {
		return nil, fmt.Errorf("generate campaign id: %w", err)
	}
	adCopy, err := encodeAdCopy(draft.AdCopy)
	if err != nil {
		return nil, err
	}
	now := r.now().UTC()

	row := r.pool.QueryRow(ctx, `INSERT INTO campaigns
    (id, name, banner_reference, age_range, location, interests, ad_copy, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$9)
RETURNING `+campaignColumns,
		id, draft.Name, draft.BannerReference, draft.AgeRange, draft.Location, draft.Interests, adCopy, string(domain.StatusPending), now)
	return scanCampaign(row)
}

// List returns all campaigns ordered by insertion.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// Get returns a campaign by id.
func (r *CampaignRepository) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	return scanCampaign(row)
}

// UpdateStatus locks the row, runs check against the stored status and
// writes the new one. updated_at only moves when the status changes.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, check func(domain.Status) error) (c *domain.Campaign, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var current string
	err = tx.QueryRow(ctx, `SELECT status FROM campaigns WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if check != nil {
		if err = check(domain.Status(current)); err != nil {
			return nil, err
		}
	}

	row := tx.QueryRow(ctx, `UPDATE campaigns
SET status = $2,
    updated_at = CASE WHEN status = $2 THEN updated_at ELSE $3 END
WHERE id = $1
RETURNING `+campaignColumns, id, string(status), r.now().UTC())
	return scanCampaign(row)
}

// SetAdCopy overwrites the ad copy of a campaign.
func (r *CampaignRepository) SetAdCopy(ctx context.Context, id string, adCopy domain.AdCopy) (*domain.Campaign, error) {
	raw, err := encodeAdCopy(&adCopy)
	if err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(ctx, `UPDATE campaigns SET ad_copy = $2, updated_at = $3 WHERE id = $1 RETURNING `+campaignColumns,
		id, raw, r.now().UTC())
	return scanCampaign(row)
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c         domain.Campaign
		status    string
		adCopyRaw []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.BannerReference,
		&c.AgeRange,
		&c.Location,
		&c.Interests,
		&adCopyRaw,
		&status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	c.Status = domain.Status(status)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	if c.AdCopy, err = decodeAdCopy(adCopyRaw); err != nil {
		return nil, err
	}
	return &c, nil
}

// encodeAdCopy returns the jsonb value for ad copy. nil maps to SQL NULL.
func encodeAdCopy(a *domain.AdCopy) ([]byte, error) {
	if a == nil {
		return nil, nil
	}
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode ad copy: %w", err)
	}
	return raw, nil
}

func decodeAdCopy(raw []byte) (*domain.AdCopy, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var a domain.AdCopy
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode ad copy: %w", err)
	}
	return &a, nil
}
