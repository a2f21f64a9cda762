package port

import (
	"context"
	"time"

	"campaign-desk/internal/core/domain"
)

// CampaignUseCase defines the campaign lifecycle operations exposed to the
// dashboard. This interface is the primary port into the application domain.
type CampaignUseCase interface {
	// CreateCampaign validates the draft and stores it as a Pending campaign.
	// A rejected draft never reaches the store. When opts.GenerateAdCopy is
	// set and the draft carries no copy, copy is generated synchronously.
	CreateCampaign(ctx context.Context, draft domain.CampaignDraft, opts CreateOptions) (*domain.Campaign, error)

	// ListCampaigns returns all campaigns in insertion order.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// GetCampaign returns a single campaign or domain.ErrNotFound.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)

	// SetStatus records a reviewer decision. Repeating the same decision is
	// a no-op that still succeeds.
	SetStatus(ctx context.Context, id string, status domain.Status) (*domain.Campaign, error)

	// RegenerateAdCopy generates fresh copy for a stored campaign and
	// overwrites the previous copy.
	RegenerateAdCopy(ctx context.Context, id string) (*domain.Campaign, error)

	// CampaignAnalytics synthesizes a simulated analytics snapshot over the
	// given number of days. days <= 0 selects the default span.
	CampaignAnalytics(ctx context.Context, id string, days int) (*domain.AnalyticsSnapshot, error)

	// Catalog returns the targeting values drafts are validated against.
	Catalog() domain.Catalog
}

// CreateOptions tunes CreateCampaign.
type CreateOptions struct {
	GenerateAdCopy bool
}

// AnalyticsSynthesizer derives a simulated snapshot for a campaign. Two calls
// with the same input are expected to differ.
type AnalyticsSynthesizer interface {
	Synthesize(campaign domain.Campaign, daySpan int, now time.Time) domain.AnalyticsSnapshot
}
