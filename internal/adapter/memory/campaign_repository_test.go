package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-desk/internal/adapter/ident"
	"campaign-desk/internal/core/domain"
)

func draft(name string) domain.CampaignDraft {
	return domain.CampaignDraft{
		Name:      name,
		AgeRange:  "25-34",
		Location:  "Paris, France",
		Interests: []string{"Travel", "Music"},
	}
}

func TestCreateForcesPendingAndTimestamps(t *testing.T) {
	repo := NewCampaignRepository(ident.NewGenerator())
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	c, err := repo.Create(context.Background(), draft("Acme"))
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, domain.StatusPending, c.Status)
	assert.Equal(t, fixed, c.CreatedAt)
	assert.Equal(t, fixed, c.UpdatedAt)
	assert.Equal(t, []string{"Travel", "Music"}, c.Interests)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	repo := NewCampaignRepository(ident.NewGenerator())
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, draft(name))
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Name)
	assert.Equal(t, "second", list[1].Name)
	assert.Equal(t, "third", list[2].Name)
}

func TestReturnedCampaignsAreCopies(t *testing.T) {
	repo := NewCampaignRepository(ident.NewGenerator())
	ctx := context.Background()

	c, err := repo.Create(ctx, draft("Acme"))
	require.NoError(t, err)
	c.Interests[0] = "Gaming"
	c.Status = domain.StatusApproved

	stored, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Travel", stored.Interests[0])
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestUpdateStatus(t *testing.T) {
	repo := NewCampaignRepository(ident.NewGenerator())
	ctx := context.Background()
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return created }

	c, err := repo.Create(ctx, draft("Acme"))
	require.NoError(t, err)

	reviewed := created.Add(time.Hour)
	repo.now = func() time.Time { return reviewed }

	updated, err := repo.UpdateStatus(ctx, c.ID, domain.StatusApproved, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, updated.Status)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, reviewed, updated.UpdatedAt)

	_, err = repo.UpdateStatus(ctx, "missing", domain.StatusApproved, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatusCheckAbortsUpdate(t *testing.T) {
	repo := NewCampaignRepository(ident.NewGenerator())
	ctx := context.Background()

	c, err := repo.Create(ctx, draft("Acme"))
	require.NoError(t, err)

	var seen domain.Status
	_, err = repo.UpdateStatus(ctx, c.ID, domain.StatusRejected, func(current domain.Status) error {
		seen = current
		return domain.ErrInvalidTransition
	})
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.StatusPending, seen)

	stored, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestSetAdCopyOverwrites(t *testing.T) {
	repo := NewCampaignRepository(ident.NewGenerator())
	ctx := context.Background()

	d := draft("Acme")
	d.AdCopy = &domain.AdCopy{Headline: "old", Body: "old", Tagline: "old"}
	c, err := repo.Create(ctx, d)
	require.NoError(t, err)

	next := domain.AdCopy{Headline: "new", Body: "new body", Tagline: "new tag"}
	updated, err := repo.SetAdCopy(ctx, c.ID, next)
	require.NoError(t, err)
	require.NotNil(t, updated.AdCopy)
	assert.Equal(t, next, *updated.AdCopy)

	_, err = repo.SetAdCopy(ctx, "missing", next)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestConcurrentCreate ensures parallel creates never collide on ids or lose
// records.
func TestConcurrentCreate(t *testing.T) {
	repo := NewCampaignRepository(ident.NewGenerator())
	ctx := context.Background()

	const count = 200
	var wg sync.WaitGroup
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, draft("same"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, count)

	seen := make(map[string]struct{}, count)
	for _, c := range list {
		seen[c.ID] = struct{}{}
	}
	assert.Len(t, seen, count)
}
