package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/orderflow"
	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

func TestMemoryCatalog_DefaultOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository(DefaultCatalog())

	bikes, err := repo.GetAll(ctx)
	require.NoError(t, err)

	codes := make([]string, 0, len(bikes))
	for _, b := range bikes {
		codes = append(codes, b.Code)
	}
	require.Equal(t, []string{"PRIMO", "TERZO", "ULTIMO", "TESORO", "OTTIMO"}, codes)

	bike, err := repo.GetByCode(ctx, "ULTIMO")
	require.NoError(t, err)
	require.Equal(t, 120000, bike.Price)

	_, err = repo.GetByCode(ctx, "primo")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemoryCatalog_Replace(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository(DefaultCatalog())

	require.Error(t, repo.ReplaceCatalog(ctx, entity.BikeCatalog{}))

	err := repo.ReplaceCatalog(ctx, entity.BikeCatalog{
		Source: "price.xlsx",
		Bikes:  []entity.Bike{{Code: "NUOVO", Price: 10}, {Code: "PRIMO", Price: 20}},
	})
	require.NoError(t, err)

	bikes, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, bikes, 2)
	require.Equal(t, "NUOVO", bikes[0].Code)

	_, err = repo.GetByCode(ctx, "TERZO")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCacheConversation_RoundTrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, closeFn, err := NewCacheConversationRepository(ctx, time.Hour)
	require.NoError(t, err)
	defer closeFn()

	conv, err := repo.Get(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, entity.ScreenMain, conv.Screen)
	require.False(t, conv.InFlow())

	conv.Screen = entity.ScreenOrder
	conv.SelectedModel = "PRIMO"
	conv.Flow = orderflow.Session{
		State: orderflow.StateAwaitingName,
		Draft: orderflow.Draft{SelectedModel: "PRIMO", FrameSize: `L (19")`},
	}
	require.NoError(t, repo.Save(ctx, conv))

	loaded, err := repo.Get(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, conv.Flow, loaded.Flow)
	require.True(t, loaded.InFlow())

	other, err := repo.Get(ctx, 6)
	require.NoError(t, err)
	require.False(t, other.InFlow())
	require.Equal(t, entity.ScreenMain, other.Screen)
}

func TestCacheConversation_RejectsZeroTTL(t *testing.T) {
	_, _, err := NewCacheConversationRepository(context.Background(), 0)
	require.Error(t, err)
}
