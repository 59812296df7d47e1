package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/repository"
	"github.com/jarradburge/optivana-vanthex-monorepo/repository/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepositoryRoundTripDefaults(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProductRepository(testutil.DB(t))

	p := newProduct("ext-1")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ergonomic Lamp", got.Title)
	assert.Equal(t, models.StringList{"https://img.example.com/lamp.jpg"}, got.Images)
	assert.Zero(t, got.Performance.TrendScore)
	assert.Zero(t, got.Performance.ConversionRate)
	assert.Zero(t, got.Performance.Popularity)
	assert.Empty(t, got.EmotionalAnalysis.BuyerPersonas)
}

func TestProductRepositoryRejectsInvalid(t *testing.T) {
	repo := repository.NewProductRepository(testutil.DB(t))
	p := newProduct("ext-neg")
	p.Price = -5
	err := repo.Create(context.Background(), p)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestProductRepositorySourceUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProductRepository(testutil.DB(t))

	require.NoError(t, repo.Create(ctx, newProduct("same")))
	err := repo.Create(ctx, newProduct("same"))
	require.Error(t, err)
	assert.Equal(t, "Product already exists", apperr.Message(err))
}

func TestProductRepositoryUpsertBySource(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProductRepository(testutil.DB(t))

	first, err := repo.UpsertBySource(ctx, newProduct("trend-1"))
	require.NoError(t, err)

	refresh := newProduct("trend-1")
	refresh.Price = 24.5
	refresh.Performance.TrendScore = 88
	second, err := repo.UpsertBySource(ctx, refresh)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 24.5, got.Price)
	assert.Equal(t, float64(88), got.Performance.TrendScore)
}

func TestProductRepositoryUpdateEmotionalAnalysis(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProductRepository(testutil.DB(t))

	p := newProduct("emo-1")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.UpdateEmotionalAnalysis(ctx, p.ID, models.EmotionalAnalysis{
		PrimaryEmotion:    "comfort",
		EmotionalSpectrum: models.StringList{"comfort", "relief"},
		BuyerPersonas: models.PersonaList{{
			Persona:    "Remote worker",
			MatchScore: 0.9,
			PainPoints: []string{"back pain"},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "comfort", got.EmotionalAnalysis.PrimaryEmotion)
	require.Len(t, got.EmotionalAnalysis.BuyerPersonas, 1)
	assert.Equal(t, "Remote worker", got.EmotionalAnalysis.BuyerPersonas[0].Persona)

	_, err = repo.UpdateEmotionalAnalysis(ctx, uuid.New(), models.EmotionalAnalysis{})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
