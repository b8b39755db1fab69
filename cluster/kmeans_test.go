package cluster

import (
	"log/slog"
	"math/rand"
	"testing"

	apperrors "crm-assistant/errors"

	"github.com/stretchr/testify/require"
)

// blobs returns three well-separated synthetic clusters and the true
// label of every point.
func blobs(rng *rand.Rand) ([][]float64, []int) {
	centers := [][]float64{{0, 0}, {10, 10}, {-10, 8}}
	var points [][]float64
	var labels []int
	for label, center := range centers {
		for i := 0; i < 20; i++ {
			points = append(points, []float64{
				center[0] + rng.Float64()*0.5,
				center[1] + rng.Float64()*0.5,
			})
			labels = append(labels, label)
		}
	}
	return points, labels
}

func TestFit_ConvergesOnSeparatedBlobs(t *testing.T) {
	req := require.New(t)
	rng := rand.New(rand.NewSource(42))
	points, labels := blobs(rng)

	model, err := Fit(points, Config{
		K:       3,
		Seeding: SeedFurthestPoint,
		Rand:    rng,
	}, slog.Default())
	req.NoError(err)

	req.True(model.Converged)
	req.Less(model.Iterations, DefaultMaxIterations)
	req.Len(model.Centroids, 3)
	req.Len(model.Assignments, len(points))

	// Permutation-invariant check: every true blob maps to exactly one
	// predicted cluster and no two blobs share one.
	mapping := map[int]int{}
	for i, label := range labels {
		got := model.Assignments[i]
		if expected, ok := mapping[label]; ok {
			req.Equal(expected, got, "blob %d split across clusters", label)
		} else {
			mapping[label] = got
		}
	}
	seen := map[int]struct{}{}
	for _, cluster := range mapping {
		_, dup := seen[cluster]
		req.False(dup, "two blobs merged into one cluster")
		seen[cluster] = struct{}{}
	}
}

func TestFit_RandomSeedingAlsoConverges(t *testing.T) {
	req := require.New(t)
	rng := rand.New(rand.NewSource(7))
	points, _ := blobs(rng)

	model, err := Fit(points, Config{
		K:         3,
		Seeding:   SeedRandom,
		Normalize: true,
		Rand:      rng,
	}, slog.Default())
	req.NoError(err)
	req.True(model.Converged)
	req.Len(model.Mins, 2)
	req.Len(model.Maxs, 2)
	req.GreaterOrEqual(model.Inertia, 0.0)
}

func TestFit_Errors(t *testing.T) {
	req := require.New(t)

	_, err := Fit([][]float64{{1, 2}}, Config{K: 0}, slog.Default())
	req.Error(err)

	_, err = Fit([][]float64{{1, 2}}, Config{K: 3}, slog.Default())
	req.ErrorIs(err, apperrors.ErrNotEnoughPoints)

	_, err = Fit([][]float64{{1, 2}, {1}}, Config{K: 2}, slog.Default())
	req.ErrorIs(err, apperrors.ErrDimensionMismatch)
}

func TestPredict(t *testing.T) {
	req := require.New(t)
	centroids := [][]float64{{0, 0}, {10, 10}}

	req.Equal(0, Predict([]float64{1, 1}, centroids))
	req.Equal(1, Predict([]float64{9, 9}, centroids))
}

func TestModelPredict_UsesStoredScaling(t *testing.T) {
	req := require.New(t)
	rng := rand.New(rand.NewSource(3))
	points, _ := blobs(rng)

	model, err := Fit(points, Config{K: 3, Seeding: SeedFurthestPoint, Normalize: true, Rand: rng}, slog.Default())
	req.NoError(err)

	// A raw point near blob 1 lands in the same cluster as its members.
	idx := model.Predict([]float64{10.2, 10.2})
	req.Equal(model.Assignments[20], idx)
}

func TestSilhouette(t *testing.T) {
	req := require.New(t)
	rng := rand.New(rand.NewSource(11))
	points, labels := blobs(rng)

	// Well-separated blobs score close to 1.
	score := Silhouette(points, labels, 3, nil)
	req.Greater(score, 0.8)

	// A deliberately bad assignment scores worse.
	shuffled := make([]int, len(labels))
	for i := range shuffled {
		shuffled[i] = i % 3
	}
	req.Greater(score, Silhouette(points, shuffled, 3, nil))

	req.Zero(Silhouette(nil, nil, 3, nil))
	req.Zero(Silhouette(points, labels, 1, nil))
}

func TestEuclidean(t *testing.T) {
	req := require.New(t)
	req.Equal(5.0, Euclidean([]float64{0, 0}, []float64{3, 4}))
	req.Zero(Euclidean([]float64{2, 2}, []float64{2, 2}))
}
