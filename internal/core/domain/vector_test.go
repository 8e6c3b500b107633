package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavelength-labs/tastemaker/internal/core/domain"
)

func TestMeanVector(t *testing.T) {
	a := domain.FeatureVector{domain.FeatValence: 0.9, domain.FeatEnergy: 0.8}
	b := domain.FeatureVector{domain.FeatValence: 0.1, domain.FeatEnergy: 0.2}

	mean, ok := domain.MeanVector([]domain.FeatureVector{a, b})
	require.True(t, ok)
	assert.InDelta(t, 0.5, mean[domain.FeatValence], 1e-9)
	assert.InDelta(t, 0.5, mean[domain.FeatEnergy], 1e-9)
	assert.Zero(t, mean[domain.FeatTempo])
}

func TestMeanVectorEmpty(t *testing.T) {
	_, ok := domain.MeanVector(nil)
	assert.False(t, ok, "empty input is the no-usable-seeds sentinel")
}

func TestCosineDistance(t *testing.T) {
	v := domain.FeatureVector{domain.FeatValence: 1, domain.FeatEnergy: 2}
	opposite := domain.FeatureVector{domain.FeatValence: -1, domain.FeatEnergy: -2}
	scaled := domain.FeatureVector{domain.FeatValence: 3, domain.FeatEnergy: 6}

	assert.InDelta(t, 0, domain.CosineDistance(v, v), 1e-9, "identical vectors")
	assert.InDelta(t, 0, domain.CosineDistance(v, scaled), 1e-9, "cosine ignores magnitude")
	assert.InDelta(t, 2, domain.CosineDistance(v, opposite), 1e-9, "opposite vectors")
	assert.InDelta(t, 1, domain.CosineDistance(v, domain.FeatureVector{}), 1e-9, "zero vector")
}

func TestFeatureVectorComplete(t *testing.T) {
	var v domain.FeatureVector
	assert.True(t, v.Complete())

	v[domain.FeatLoudness] = math.NaN()
	assert.False(t, v.Complete())
}

func TestTrackFeaturesOrder(t *testing.T) {
	track := domain.Track{
		Year:       1982,
		Valence:    0.5,
		DurationMs: 293000,
		Tempo:      138.9,
	}

	v := track.Features()
	assert.Equal(t, 0.5, v[domain.FeatValence])
	assert.Equal(t, 1982.0, v[domain.FeatYear], "year doubles as a model feature")
	assert.Equal(t, 293000.0, v[domain.FeatDurationMs])
	assert.Equal(t, 138.9, v[domain.FeatTempo])
}
