package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/port"
)

// demoCampaigns are created by Seed. Every value exists in the built-in
// targeting catalog.
var demoCampaigns = []domain.CampaignDraft{
	{
		Name:            "Spring Running Shoes",
		BannerReference: "https://images.example.com/banners/running.png",
		AgeRange:        "25-34",
		Location:        "New York, USA",
		Interests:       []string{"Sports", "Fitness", "Health & Wellness"},
	},
	{
		Name:      "Weekend in Paris",
		AgeRange:  "35-44",
		Location:  "Paris, France",
		Interests: []string{"Travel", "Food & Dining", "Arts & Culture"},
	},
	{
		Name:      "Indie Game Launch",
		AgeRange:  "18-24",
		Location:  "Tokyo, Japan",
		Interests: []string{"Gaming", "Technology"},
	},
	{
		Name:      "Retirement Planning Webinar",
		AgeRange:  "55-64",
		Location:  "Toronto, Canada",
		Interests: []string{"Finance", "Education"},
	},
	{
		Name:      "Smart Garden Kit",
		AgeRange:  "45-54",
		Location:  "Berlin, Germany",
		Interests: []string{"Home & Garden", "Technology"},
	},
}

// Seed inserts demo campaigns through the lifecycle usecase, so they are
// validated and stored like any other campaign. Some of them receive a
// random review decision and generated ad copy. A store that already holds
// campaigns is left untouched and seeded reports false.
func Seed(ctx context.Context, campaigns port.CampaignUseCase) (seeded bool, err error) {
	existing, err := campaigns.ListCampaigns(ctx)
	if err != nil {
		return false, fmt.Errorf("list campaigns: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i, draft := range demoCampaigns {
		c, err := campaigns.CreateCampaign(ctx, draft, port.CreateOptions{GenerateAdCopy: i%2 == 0})
		if err != nil {
			return false, fmt.Errorf("seed campaign %q: %w", draft.Name, err)
		}
		switch r.Intn(3) {
		case 0:
			continue
		case 1:
			_, err = campaigns.SetStatus(ctx, c.ID, domain.StatusApproved)
		default:
			_, err = campaigns.SetStatus(ctx, c.ID, domain.StatusRejected)
		}
		if err != nil {
			return false, fmt.Errorf("seed status of %q: %w", draft.Name, err)
		}
	}
	return true, nil
}
