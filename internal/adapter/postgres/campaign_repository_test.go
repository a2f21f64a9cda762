package postgres

import (
	"context"
	"errors"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-desk/internal/adapter/ident"
	"campaign-desk/internal/config/configs"
	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/db"
)

// newTestRepository connects to the database named by PSQL_TEST_ADDRESS and
// applies the migrations. The test is skipped without it.
func newTestRepository(t *testing.T) *CampaignRepository {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr))

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *u, PingTimeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE campaigns`)
	require.NoError(t, err)
	return NewCampaignRepository(pool, ident.NewGenerator())
}

func TestCampaignRepositoryLifecycle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	draft := domain.CampaignDraft{
		Name:      "Summer Sale",
		AgeRange:  "25-34",
		Location:  "Paris, France",
		Interests: []string{"Travel", "Music"},
	}

	a, err := repo.Create(ctx, draft)
	require.NoError(t, err)
	b, err := repo.Create(ctx, draft)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, domain.StatusPending, a.Status)
	assert.Nil(t, a.AdCopy)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, []string{"Travel", "Music"}, list[0].Interests)

	approved, err := repo.UpdateStatus(ctx, a.ID, domain.StatusApproved, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, approved.Status)
	assert.Equal(t, a.CreatedAt, approved.CreatedAt)

	abort := errors.New("abort")
	_, err = repo.UpdateStatus(ctx, a.ID, domain.StatusRejected, func(domain.Status) error { return abort })
	require.ErrorIs(t, err, abort)
	got, err := repo.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)

	adCopy := domain.AdCopy{Headline: "h", Body: "b", Tagline: "t"}
	withCopy, err := repo.SetAdCopy(ctx, b.ID, adCopy)
	require.NoError(t, err)
	assert.Equal(t, adCopy, *withCopy.AdCopy)

	_, err = repo.Get(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.UpdateStatus(ctx, "missing", domain.StatusApproved, nil)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.SetAdCopy(ctx, "missing", adCopy)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdCopyEncoding(t *testing.T) {
	raw, err := encodeAdCopy(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)

	a := &domain.AdCopy{Headline: "h", Body: "b", Tagline: "t"}
	raw, err = encodeAdCopy(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"headline":"h","body":"b","tagline":"t"}`, string(raw))

	back, err := decodeAdCopy(raw)
	require.NoError(t, err)
	assert.Equal(t, a, back)

	back, err = decodeAdCopy(nil)
	require.NoError(t, err)
	assert.Nil(t, back)
}
