// Package cluster implements a generic K-Means engine for offline batch
// segmentation, plus the static category bucket used by the live chat
// path. The engine is parameterized by distance metric and seeding
// strategy instead of duplicating code paths per variant.
package cluster

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	apperrors "crm-assistant/errors"
)

// Seeding selects how the initial centroids are chosen.
type Seeding int

const (
	// SeedRandom picks k distinct points uniformly at random.
	SeedRandom Seeding = iota
	// SeedFurthestPoint picks the first centroid uniformly at random and
	// each next one as the point with the greatest minimum distance to
	// the centroids chosen so far. A deterministic approximation of
	// k-means++, not probability-weighted sampling.
	SeedFurthestPoint
)

// DistanceFunc measures the distance between two points.
type DistanceFunc func(a, b []float64) float64

// Euclidean is the default metric.
func Euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Config drives one Fit call.
type Config struct {
	K             int
	MaxIterations int // 0 means DefaultMaxIterations
	Tolerance     float64
	Seeding       Seeding
	Distance      DistanceFunc // nil means Euclidean
	Normalize     bool         // per-feature min-max scaling to [0,1]
	Rand          *rand.Rand   // nil means an unseeded source
}

const (
	DefaultMaxIterations = 100
	DefaultTolerance     = 1e-4
)

// Model is the value produced by one Fit call; callers own versioning.
// Converged is true only when centroid movement fell below the tolerance
// before the iteration cap. When Normalize was set, Centroids live in
// the normalized space and Mins/Maxs record the scaling.
type Model struct {
	Centroids   [][]float64
	Assignments []int
	K           int
	Iterations  int
	Inertia     float64
	Converged   bool
	Mins, Maxs  []float64
}

// Fit runs seeding plus Lloyd's iteration over the points.
func Fit(points [][]float64, cfg Config, log *slog.Logger) (Model, error) {
	if cfg.K <= 0 {
		return Model{}, fmt.Errorf("cluster: k must be positive, got %d", cfg.K)
	}
	if len(points) < cfg.K {
		return Model{}, fmt.Errorf("%w: %d points for k=%d", apperrors.ErrNotEnoughPoints, len(points), cfg.K)
	}
	dims := len(points[0])
	for _, p := range points {
		if len(p) != dims {
			return Model{}, fmt.Errorf("%w: expected %d features, got %d", apperrors.ErrDimensionMismatch, dims, len(p))
		}
	}

	maxIterations := cfg.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	tolerance := cfg.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	distance := cfg.Distance
	if distance == nil {
		distance = Euclidean
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	working := points
	model := Model{K: cfg.K}
	if cfg.Normalize {
		working, model.Mins, model.Maxs = minMaxScale(points)
	}

	centroids := seed(working, cfg.K, cfg.Seeding, distance, rng)
	assignments := make([]int, len(working))

	converged := false
	iterations := 0
	for iterations = 1; iterations <= maxIterations; iterations++ {
		for i, point := range working {
			assignments[i] = nearest(point, centroids, distance)
		}

		moved := 0.0
		for c := range centroids {
			mean := clusterMean(working, assignments, c, dims)
			if mean == nil {
				continue // empty cluster keeps its centroid
			}
			moved += distance(centroids[c], mean)
			centroids[c] = mean
		}
		if moved < tolerance {
			converged = true
			break
		}
	}
	if iterations > maxIterations {
		iterations = maxIterations
	}

	inertia := 0.0
	for i, point := range working {
		d := distance(point, centroids[assignments[i]])
		inertia += d * d
	}

	model.Centroids = centroids
	model.Assignments = assignments
	model.Iterations = iterations
	model.Inertia = inertia
	model.Converged = converged
	if log != nil {
		log.Debug("K-Means fit finished",
			"k", cfg.K, "points", len(points),
			"iterations", iterations, "converged", converged, "inertia", inertia)
	}
	return model, nil
}

// Predict assigns a standalone point to its nearest centroid.
func Predict(point []float64, centroids [][]float64) int {
	return nearest(point, centroids, Euclidean)
}

// Predict assigns a raw point using the model's own scaling and metric
// space.
func (m Model) Predict(point []float64) int {
	if m.Mins != nil {
		point = scalePoint(point, m.Mins, m.Maxs)
	}
	return nearest(point, m.Centroids, Euclidean)
}

// Silhouette is the mean over points of (b-a)/max(a,b), where a is the
// mean intra-cluster distance and b the minimum mean distance to another
// cluster. O(n^2): intended for small analytic batches only.
func Silhouette(points [][]float64, assignments []int, k int, distance DistanceFunc) float64 {
	if distance == nil {
		distance = Euclidean
	}
	n := len(points)
	if n == 0 || k < 2 {
		return 0
	}

	counts := make([]int, k)
	for _, a := range assignments {
		counts[a]++
	}

	total := 0.0
	for i := range points {
		own := assignments[i]
		if counts[own] <= 1 {
			continue // singleton clusters contribute 0
		}

		sums := make([]float64, k)
		for j := range points {
			if i == j {
				continue
			}
			sums[assignments[j]] += distance(points[i], points[j])
		}

		a := sums[own] / float64(counts[own]-1)
		b := math.Inf(1)
		for c := 0; c < k; c++ {
			if c == own || counts[c] == 0 {
				continue
			}
			if mean := sums[c] / float64(counts[c]); mean < b {
				b = mean
			}
		}
		if math.IsInf(b, 1) || max(a, b) == 0 {
			continue
		}
		total += (b - a) / max(a, b)
	}
	return total / float64(n)
}

func seed(points [][]float64, k int, strategy Seeding, distance DistanceFunc, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	switch strategy {
	case SeedFurthestPoint:
		chosen := map[int]struct{}{}
		first := rng.Intn(len(points))
		chosen[first] = struct{}{}
		centroids = append(centroids, clonePoint(points[first]))

		for len(centroids) < k {
			bestIdx, bestDist := -1, -1.0
			for i, point := range points {
				if _, taken := chosen[i]; taken {
					continue
				}
				minDist := math.Inf(1)
				for _, centroid := range centroids {
					if d := distance(point, centroid); d < minDist {
						minDist = d
					}
				}
				if minDist > bestDist {
					bestIdx, bestDist = i, minDist
				}
			}
			chosen[bestIdx] = struct{}{}
			centroids = append(centroids, clonePoint(points[bestIdx]))
		}
	default:
		for _, idx := range rng.Perm(len(points))[:k] {
			centroids = append(centroids, clonePoint(points[idx]))
		}
	}
	return centroids
}

func nearest(point []float64, centroids [][]float64, distance DistanceFunc) int {
	best, bestDist := 0, math.Inf(1)
	for c, centroid := range centroids {
		if d := distance(point, centroid); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func clusterMean(points [][]float64, assignments []int, c, dims int) []float64 {
	mean := make([]float64, dims)
	count := 0
	for i, point := range points {
		if assignments[i] != c {
			continue
		}
		for d := range point {
			mean[d] += point[d]
		}
		count++
	}
	if count == 0 {
		return nil
	}
	for d := range mean {
		mean[d] /= float64(count)
	}
	return mean
}

// minMaxScale maps every feature to [0,1]; constant features become 0.
func minMaxScale(points [][]float64) ([][]float64, []float64, []float64) {
	dims := len(points[0])
	mins := make([]float64, dims)
	maxs := make([]float64, dims)
	copy(mins, points[0])
	copy(maxs, points[0])
	for _, point := range points {
		for d, v := range point {
			mins[d] = math.Min(mins[d], v)
			maxs[d] = math.Max(maxs[d], v)
		}
	}

	scaled := make([][]float64, len(points))
	for i, point := range points {
		scaled[i] = scalePoint(point, mins, maxs)
	}
	return scaled, mins, maxs
}

func scalePoint(point, mins, maxs []float64) []float64 {
	scaled := make([]float64, len(point))
	for d, v := range point {
		if span := maxs[d] - mins[d]; span > 0 {
			scaled[d] = (v - mins[d]) / span
		}
	}
	return scaled
}

func clonePoint(point []float64) []float64 {
	clone := make([]float64, len(point))
	copy(clone, point)
	return clone
}
