package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/port"
)

// CampaignUseCase implements the campaign lifecycle: validation, storage,
// review decisions, ad copy and simulated analytics.
type CampaignUseCase struct {
	repo        port.CampaignRepository
	catalog     domain.Catalog
	copywriter  port.CopyUseCase
	synthesizer port.AnalyticsSynthesizer
	metrics     port.Metrics
	logger      *slog.Logger

	// lockReviewed makes Approved and Rejected terminal.
	lockReviewed bool
	now          func() time.Time
}

// CampaignOptions carries the optional collaborators of CampaignUseCase.
type CampaignOptions struct {
	// LockReviewed rejects moving a reviewed campaign to the other reviewed
	// status with domain.ErrInvalidTransition.
	LockReviewed bool
	Metrics      port.Metrics
	Logger       *slog.Logger
}

// NewCampaignUseCase wires the lifecycle usecase.
func NewCampaignUseCase(
	repo port.CampaignRepository,
	catalog domain.Catalog,
	copywriter port.CopyUseCase,
	synthesizer port.AnalyticsSynthesizer,
	opts CampaignOptions,
) *CampaignUseCase {
	u := &CampaignUseCase{
		repo:         repo,
		catalog:      catalog,
		copywriter:   copywriter,
		synthesizer:  synthesizer,
		metrics:      opts.Metrics,
		logger:       opts.Logger,
		lockReviewed: opts.LockReviewed,
		now:          time.Now,
	}
	if u.metrics == nil {
		u.metrics = nopMetrics{}
	}
	if u.logger == nil {
		u.logger = slog.Default()
	}
	return u
}

// CreateCampaign validates the draft, optionally generates ad copy and stores
// the campaign as Pending. Nothing is stored when validation fails.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, draft domain.CampaignDraft, opts port.CreateOptions) (*domain.Campaign, error) {
	clean, err := normalizeDraft(draft, u.catalog)
	if err != nil {
		return nil, err
	}

	if opts.GenerateAdCopy && clean.AdCopy == nil {
		res, err := u.copywriter.GenerateAdCopy(ctx, clean.Brief())
		if err != nil {
			return nil, fmt.Errorf("generate ad copy: %w", err)
		}
		clean.AdCopy = &res.AdCopy
	}

	c, err := u.repo.Create(ctx, clean)
	if err != nil {
		return nil, err
	}
	u.metrics.CampaignCreated()
	u.logger.Info("campaign created",
		slog.String("campaign_id", c.ID),
		slog.String("name", c.Name),
		slog.Bool("ad_copy", c.AdCopy != nil),
	)
	return c, nil
}

func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.List(ctx)
}

func (u *CampaignUseCase) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return u.repo.Get(ctx, id)
}

// SetStatus records a reviewer decision. Setting the status a campaign
// already has succeeds without changes.
func (u *CampaignUseCase) SetStatus(ctx context.Context, id string, status domain.Status) (*domain.Campaign, error) {
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	var previous domain.Status
	check := func(current domain.Status) error {
		previous = current
		if u.lockReviewed && current.IsReviewed() && current != status {
			return fmt.Errorf("%w: campaign is already %s", domain.ErrInvalidTransition, current)
		}
		return nil
	}

	c, err := u.repo.UpdateStatus(ctx, id, status, check)
	if err != nil {
		return nil, err
	}
	if previous != status {
		u.metrics.CampaignStatusChanged(status)
		u.logger.Info("campaign status changed",
			slog.String("campaign_id", id),
			slog.String("from", string(previous)),
			slog.String("to", string(status)),
		)
	}
	return c, nil
}

// RegenerateAdCopy replaces the ad copy of a stored campaign with freshly
// generated copy.
func (u *CampaignUseCase) RegenerateAdCopy(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := u.copywriter.GenerateAdCopy(ctx, c.Brief())
	if err != nil {
		return nil, fmt.Errorf("generate ad copy: %w", err)
	}
	return u.repo.SetAdCopy(ctx, id, res.AdCopy)
}

// CampaignAnalytics returns a fresh simulated snapshot for a stored campaign.
func (u *CampaignUseCase) CampaignAnalytics(ctx context.Context, id string, days int) (*domain.AnalyticsSnapshot, error) {
	c, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	snap := u.synthesizer.Synthesize(*c, days, u.now())
	u.metrics.AnalyticsSynthesized()
	return &snap, nil
}

func (u *CampaignUseCase) Catalog() domain.Catalog {
	return u.catalog
}
