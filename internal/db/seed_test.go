package db

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-desk/internal/adapter/catalog"
	"campaign-desk/internal/adapter/ident"
	"campaign-desk/internal/adapter/memory"
	"campaign-desk/internal/adapter/usecase"
)

func newSeedUseCase(t *testing.T) *usecase.CampaignUseCase {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat, err := catalog.Default()
	require.NoError(t, err)
	copyUC, err := usecase.NewCopyUseCase(nil, 0, nil, logger)
	require.NoError(t, err)
	return usecase.NewCampaignUseCase(
		memory.NewCampaignRepository(ident.NewGenerator()),
		cat,
		copyUC,
		usecase.NewSynthesizer(usecase.DefaultAnalyticsModel(), nil),
		usecase.CampaignOptions{Logger: logger},
	)
}

func TestSeedCreatesValidCampaigns(t *testing.T) {
	uc := newSeedUseCase(t)

	seeded, err := Seed(context.Background(), uc)
	require.NoError(t, err)
	assert.True(t, seeded)

	list, err := uc.ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, list, len(demoCampaigns))
	for i, c := range list {
		assert.Equal(t, demoCampaigns[i].Name, c.Name)
		assert.Equal(t, i%2 == 0, c.AdCopy != nil, c.Name)
	}
}

func TestSeedSkipsPopulatedStore(t *testing.T) {
	ctx := context.Background()
	uc := newSeedUseCase(t)

	seeded, err := Seed(ctx, uc)
	require.NoError(t, err)
	require.True(t, seeded)
	first, err := uc.ListCampaigns(ctx)
	require.NoError(t, err)

	seeded, err = Seed(ctx, uc)
	require.NoError(t, err)
	assert.False(t, seeded)

	second, err := uc.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, second, len(demoCampaigns))
	assert.Equal(t, first, second)
}
