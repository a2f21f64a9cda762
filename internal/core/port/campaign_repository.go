package port

import (
	"context"

	"campaign-desk/internal/core/domain"
)

// CampaignRepository defines the campaign store. It is an outbound port in
// hexagonal architecture. Implementations must be concurrency-safe: Create
// assigns the identifier and appends the record in a single critical section.
// Every method returns copies; mutating a returned campaign never changes
// stored state.
type CampaignRepository interface {
	// Create persists a validated draft. The store assigns ID, CreatedAt and
	// UpdatedAt and always sets Status to Pending.
	Create(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error)
	// List returns all campaigns in insertion order.
	List(ctx context.Context) ([]domain.Campaign, error)
	// Get returns a campaign by id or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	// UpdateStatus sets the status of a campaign. check, when not nil, is run
	// against the current status inside the same critical section and aborts
	// the update when it returns an error.
	UpdateStatus(ctx context.Context, id string, status domain.Status, check func(current domain.Status) error) (*domain.Campaign, error)
	// SetAdCopy overwrites the ad copy of a campaign.
	SetAdCopy(ctx context.Context, id string, adCopy domain.AdCopy) (*domain.Campaign, error)
}
