package intent

import (
	"log/slog"
	"sync"
	"testing"

	"crm-assistant/domain"
	apperrors "crm-assistant/errors"

	"github.com/stretchr/testify/require"
)

func newTrainedClassifier(t *testing.T) *Classifier {
	t.Helper()
	overrides, err := DefaultOverrides()
	require.NoError(t, err)
	c := NewClassifier(slog.Default(), overrides)
	require.NoError(t, c.Train(DefaultCorpus()))
	return c
}

func TestClassifier_Predict(t *testing.T) {
	c := newTrainedClassifier(t)

	tests := []struct {
		name       string
		input      string
		intent     string
		confidence float64 // exact expectation when >= 0, else only intent is checked
	}{
		{
			name:       "Noun and verb both matched",
			input:      "delete contact John",
			intent:     "delete_contact",
			confidence: -1,
		},
		{
			name:       "Hard override bypasses scoring",
			input:      "my save failed",
			intent:     IntentError,
			confidence: 0.95,
		},
		{
			name:       "Override wins even with scoring vocabulary present",
			input:      "the contact update crashed",
			intent:     IntentError,
			confidence: 0.95,
		},
		{
			name:       "Empty input greets",
			input:      "",
			intent:     IntentGreeting,
			confidence: 0.6,
		},
		{
			name:       "Stopword-only input greets",
			input:      "can you please",
			intent:     IntentGreeting,
			confidence: 0.6,
		},
		{
			name:       "Zero corpus overlap falls back",
			input:      "quantum entanglement paradox",
			intent:     IntentFallback,
			confidence: 0,
		},
		{
			name:       "Report generation",
			input:      "generate the sales report",
			intent:     "generate_report",
			confidence: -1,
		},
		{
			name:       "Typo in the noun still matches",
			input:      "update the cotnact details",
			intent:     "update_contact",
			confidence: -1,
		},
		{
			name:       "Overlap fallback for vocabulary-free intent",
			input:      "help",
			intent:     "help",
			confidence: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			prediction := c.Predict(tt.input)
			req.Equal(tt.intent, prediction.Intent)
			if tt.confidence >= 0 {
				req.InDelta(tt.confidence, prediction.Confidence, 1e-9)
			}
			req.GreaterOrEqual(prediction.Confidence, 0.0)
			req.LessOrEqual(prediction.Confidence, 1.0)
		})
	}
}

func TestClassifier_PredictEntities(t *testing.T) {
	req := require.New(t)
	c := newTrainedClassifier(t)

	prediction := c.Predict("delete contact John Smith")
	req.Equal("delete_contact", prediction.Intent)
	req.Equal("John Smith", prediction.Entities["person"])

	prediction = c.Predict("send an email to bob@acme.io")
	req.Equal("bob@acme.io", prediction.Entities["email"])
}

func TestClassifier_EmptyCorpusFailsOpen(t *testing.T) {
	req := require.New(t)
	overrides, err := DefaultOverrides()
	req.NoError(err)
	c := NewClassifier(slog.Default(), overrides)

	err = c.Train(nil)
	req.ErrorIs(err, apperrors.ErrEmptyCorpus)
	req.ErrorIs(c.TrainingError(), apperrors.ErrEmptyCorpus)

	prediction := c.Predict("delete contact John")
	req.Equal(IntentFallback, prediction.Intent)
	req.Equal(0.0, prediction.Confidence)
}

func TestClassifier_UntrainedFallsBack(t *testing.T) {
	req := require.New(t)
	c := NewClassifier(slog.Default(), nil)

	prediction := c.Predict("delete contact John")
	req.Equal(IntentFallback, prediction.Intent)
	req.Equal(0.0, prediction.Confidence)
}

func TestClassifier_RetrainReplacesVocabularies(t *testing.T) {
	req := require.New(t)
	c := newTrainedClassifier(t)

	req.NoError(c.Train([]domain.TrainingExample{
		{Phrase: "export the invoice", Intent: "export_invoice"},
	}))

	prediction := c.Predict("export invoice")
	req.Equal("export_invoice", prediction.Intent)

	// The old vocabularies are gone wholesale.
	prediction = c.Predict("delete contact John")
	req.NotEqual("delete_contact", prediction.Intent)
}

func TestClassifier_TrainOnceSingleFlight(t *testing.T) {
	req := require.New(t)
	overrides, err := DefaultOverrides()
	req.NoError(err)
	c := NewClassifier(slog.Default(), overrides)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.TrainOnce(DefaultCorpus())
			_ = c.Predict("delete contact John")
		}()
	}
	wg.Wait()

	req.NoError(c.TrainingError())
	req.Equal("delete_contact", c.Predict("delete contact John").Intent)
}

func TestDefaultOverrides(t *testing.T) {
	req := require.New(t)
	overrides, err := DefaultOverrides()
	req.NoError(err)
	req.Len(overrides, 1)

	rule := overrides[0]
	req.Equal(IntentError, rule.Intent)
	req.True(rule.Matches("the sync is NOT WORKING at all"))
	req.True(rule.Matches("I hit a bug"))
	req.False(rule.Matches("update my contact"))
}
