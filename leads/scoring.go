// Package leads scores sales leads with a linear model and supports a
// single-pass online gradient update from historical conversions.
package leads

import "math"

const (
	learningRate = 0.01

	// companySize is reported on a 1-5 scale and pre-scaled by 20 to
	// join the other 0-100 features. The asymmetry is historical and
	// preserved on purpose: "fixing" it silently would change every
	// trained weight's meaning.
	companySizeScale = 20.0

	hotThreshold  = 70.0
	warmThreshold = 40.0
)

// FeatureCount is the fixed width of the model.
const FeatureCount = 6

// Features are the six signals of one lead. All are nominally 0-100
// except CompanySize (1-5).
type Features struct {
	Engagement  float64
	CompanySize float64
	BudgetFit   float64
	Authority   float64
	NeedUrgency float64
	Timeline    float64
}

// Vector returns the scaled feature vector used by scoring, training and
// segmentation.
func (f Features) Vector() []float64 {
	return []float64{
		f.Engagement,
		f.CompanySize * companySizeScale,
		f.BudgetFit,
		f.Authority,
		f.NeedUrgency,
		f.Timeline,
	}
}

// Record is one historical lead with its observed outcome.
type Record struct {
	Features  Features
	Converted bool
}

// Model is a linear lead scorer. It is a value: Train returns an updated
// copy and never mutates the receiver, so a model in use for scoring is
// read-only.
type Model struct {
	Weights [FeatureCount]float64
	Bias    float64
	Trained bool
	Samples int
}

// NewModel returns the heuristic default weights used before any
// training data is available.
func NewModel() Model {
	return Model{
		Weights: [FeatureCount]float64{0.25, 0.15, 0.20, 0.15, 0.15, 0.10},
		Bias:    5,
	}
}

// Score returns the 0-100 lead quality estimate.
func (m Model) Score(f Features) float64 {
	return clip(m.raw(f), 0, 100)
}

func (m Model) raw(f Features) float64 {
	total := m.Bias
	for i, feature := range f.Vector() {
		total += m.Weights[i] * (feature / 100) * 100
	}
	return total
}

// Conversion estimates the conversion probability as a percentage.
func (m Model) Conversion(f Features) float64 {
	return sigmoid(m.Score(f)/25) * 100
}

// Category buckets a score into hot, warm or cold.
func Category(score float64) string {
	switch {
	case score >= hotThreshold:
		return "hot"
	case score >= warmThreshold:
		return "warm"
	default:
		return "cold"
	}
}

// Train runs one unshuffled pass of online gradient updates over the
// history and returns the updated model. Designed for a background job,
// not the request path.
func (m Model) Train(history []Record) Model {
	for _, record := range history {
		target := 0.0
		if record.Converted {
			target = 100.0
		}
		diff := target - m.Score(record.Features)
		for i, feature := range record.Features.Vector() {
			m.Weights[i] += learningRate * diff * (feature / 100)
		}
		m.Bias += learningRate * diff
	}
	m.Trained = true
	m.Samples += len(history)
	return m
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func clip(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
