package domain

import (
	"slices"
	"time"
)

// Status is the review state of a campaign.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// IsReviewed reports whether a reviewer has already decided on the campaign.
func (s Status) IsReviewed() bool {
	return s == StatusApproved || s == StatusRejected
}

// IsReviewTarget reports whether s may be requested by a reviewer. Campaigns
// can never be moved back to Pending.
func (s Status) IsReviewTarget() bool {
	return s.IsReviewed()
}

// Campaign represents an advertising campaign created through the dashboard.
// ID and CreatedAt are assigned by the store and never change afterwards.
type Campaign struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	BannerReference string    `json:"banner_reference,omitempty"`
	AgeRange        string    `json:"age_range"`
	Location        string    `json:"location"`
	Interests       []string  `json:"interests"`
	AdCopy          *AdCopy   `json:"ad_copy,omitempty"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Clone returns a deep copy so callers cannot mutate stored state through
// shared slices or pointers.
func (c Campaign) Clone() Campaign {
	c.Interests = slices.Clone(c.Interests)
	if c.AdCopy != nil {
		cp := *c.AdCopy
		c.AdCopy = &cp
	}
	return c
}

// Brief returns the attributes used for ad copy generation.
func (c Campaign) Brief() CopyBrief {
	return CopyBrief{
		Name:      c.Name,
		AgeRange:  c.AgeRange,
		Location:  c.Location,
		Interests: slices.Clone(c.Interests),
	}
}

// CampaignDraft holds user supplied, unvalidated campaign attributes.
type CampaignDraft struct {
	Name            string   `json:"name"`
	BannerReference string   `json:"banner_reference"`
	AgeRange        string   `json:"age_range"`
	Location        string   `json:"location"`
	Interests       []string `json:"interests"`
	AdCopy          *AdCopy  `json:"ad_copy,omitempty"`
}

// Brief returns the attributes of the draft used for ad copy generation.
func (d CampaignDraft) Brief() CopyBrief {
	return CopyBrief{
		Name:      d.Name,
		AgeRange:  d.AgeRange,
		Location:  d.Location,
		Interests: slices.Clone(d.Interests),
	}
}
