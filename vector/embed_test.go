package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbed(t *testing.T) {
	req := require.New(t)

	t.Run("Deterministic", func(t *testing.T) {
		a := Embed("update the contact phone number", DefaultDim)
		b := Embed("update the contact phone number", DefaultDim)
		req.Equal(a, b)
	})

	t.Run("Unit norm for nonempty text", func(t *testing.T) {
		vec := Embed("schedule a meeting with the sales team", DefaultDim)
		norm := 0.0
		for _, v := range vec {
			norm += v * v
		}
		req.InDelta(1.0, math.Sqrt(norm), 1e-9)
	})

	t.Run("Empty text is the zero vector", func(t *testing.T) {
		vec := Embed("", DefaultDim)
		req.Len(vec, DefaultDim)
		for _, v := range vec {
			req.Zero(v)
		}
	})

	t.Run("Stopword-only text is the zero vector", func(t *testing.T) {
		vec := Embed("the and for", DefaultDim)
		for _, v := range vec {
			req.Zero(v)
		}
	})

	t.Run("Different texts differ", func(t *testing.T) {
		req.NotEqual(
			Embed("sales pipeline report", DefaultDim),
			Embed("delete contact record", DefaultDim),
		)
	})
}

func TestCosine(t *testing.T) {
	req := require.New(t)

	v := Embed("generate the quarterly report", DefaultDim)
	req.InDelta(1.0, Cosine(v, v), 1e-9)

	zero := make([]float64, DefaultDim)
	req.Equal(0.0, Cosine(zero, v))
	req.Equal(0.0, Cosine(v, zero))
	req.Equal(0.0, Cosine(zero, zero))

	req.InDelta(0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	req.InDelta(-1.0, Cosine([]float64{1, 0}, []float64{-1, 0}), 1e-9)
}
