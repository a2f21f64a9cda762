// Package memory holds the in-process campaign store. Campaigns live for the
// lifetime of the process only.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"campaign-desk/internal/core/domain"
)

// IDGenerator mints campaign identifiers.
type IDGenerator interface {
	New() (string, error)
}

// CampaignRepository implements port.CampaignRepository on a slice guarded
// by a mutex. The slice preserves insertion order; index maps ids to
// positions.
type CampaignRepository struct {
	mu        sync.RWMutex
	campaigns []domain.Campaign
	index     map[string]int

	ids IDGenerator
	now func() time.Time
}

// NewCampaignRepository returns an empty store.
func NewCampaignRepository(ids IDGenerator) *CampaignRepository {
	return &CampaignRepository{
		index: make(map[string]int),
		ids:   ids,
		now:   time.Now,
	}
}

// Create assigns an identifier and timestamps, forces Pending and appends the
// campaign. Identifier assignment and append share one critical section.
func (r *CampaignRepository) Create(_ context.Context, draft domain.CampaignDraft) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.ids.New()
	if err != nil {
		return nil, fmt.Errorf("generate campaign id: %w", err)
	}
	if _, exists := r.index[id]; exists {
		return nil, fmt.Errorf("duplicate campaign id %q", id)
	}

	now := r.now().UTC()
	c := domain.Campaign{
		ID:              id,
		Name:            draft.Name,
		BannerReference: draft.BannerReference,
		AgeRange:        draft.AgeRange,
		Location:        draft.Location,
		Interests:       slices.Clone(draft.Interests),
		Status:          domain.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if draft.AdCopy != nil {
		cp := *draft.AdCopy
		c.AdCopy = &cp
	}

	r.index[id] = len(r.campaigns)
	r.campaigns = append(r.campaigns, c)

	out := c.Clone()
	return &out, nil
}

// List returns copies of all campaigns in insertion order.
func (r *CampaignRepository) List(_ context.Context) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		out = append(out, c.Clone())
	}
	return out, nil
}

// Get returns a copy of the campaign with the given id.
func (r *CampaignRepository) Get(_ context.Context, id string) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := r.campaigns[i].Clone()
	return &out, nil
}

// UpdateStatus changes the status in place. check runs under the write lock so
// the decision and the update cannot interleave with another reviewer.
func (r *CampaignRepository) UpdateStatus(_ context.Context, id string, status domain.Status, check func(domain.Status) error) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := &r.campaigns[i]
	if check != nil {
		if err := check(c.Status); err != nil {
			return nil, err
		}
	}
	if c.Status != status {
		c.Status = status
		c.UpdatedAt = r.now().UTC()
	}
	out := c.Clone()
	return &out, nil
}

// SetAdCopy overwrites the ad copy of a campaign.
func (r *CampaignRepository) SetAdCopy(_ context.Context, id string, adCopy domain.AdCopy) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := &r.campaigns[i]
	c.AdCopy = &adCopy
	c.UpdatedAt = r.now().UTC()

	out := c.Clone()
	return &out, nil
}
