package intent

import (
	"log/slog"
	"sort"
	"sync"

	"crm-assistant/domain"
	apperrors "crm-assistant/errors"
	"crm-assistant/nlp"
)

const (
	exactMatchScore    = 100.0
	fuzzyMatchScore    = 50.0
	nounWeight         = 2.0
	confidenceDivisor  = 10000.0
	maxConfidence      = 0.99
	overlapFloor       = 0.35
	greetingConfidence = 0.6
)

type vocabulary map[string]struct{}

type trainingPhrase struct {
	intent string
	tokens []string
}

// Classifier assigns an intent to free text using per-intent noun and
// verb vocabularies derived from a static training corpus, with fuzzy
// matching for typos and an ordered override rule list evaluated before
// any scoring.
//
// The vocabulary maps are replaced wholesale under the mutex on every
// (re)train, so concurrent readers never observe a half-built model.
type Classifier struct {
	log       *slog.Logger
	overrides []OverrideRule
	once      sync.Once

	mu       sync.RWMutex
	nouns    map[string]vocabulary
	verbs    map[string]vocabulary
	phrases  []trainingPhrase
	ready    bool
	trainErr error
}

func NewClassifier(log *slog.Logger, overrides []OverrideRule) *Classifier {
	return &Classifier{log: log, overrides: overrides}
}

// TrainOnce trains at most once per classifier, guarding the first-use
// initialization against concurrent first requests.
func (c *Classifier) TrainOnce(corpus []domain.TrainingExample) {
	c.once.Do(func() { _ = c.Train(corpus) })
}

// Train extracts the per-intent noun and verb vocabularies from the
// corpus and swaps them in atomically. Idempotent. An empty corpus does
// not propagate to the request path: the classifier marks itself ready
// with a captured error and predictions degrade to fallback.
func (c *Classifier) Train(corpus []domain.TrainingExample) error {
	nouns := make(map[string]vocabulary)
	verbs := make(map[string]vocabulary)
	var phrases []trainingPhrase

	for _, example := range corpus {
		tokens := nlp.Tokenize(example.Phrase)
		phrases = append(phrases, trainingPhrase{intent: example.Intent, tokens: tokens})

		if _, ok := nouns[example.Intent]; !ok {
			nouns[example.Intent] = vocabulary{}
			verbs[example.Intent] = vocabulary{}
		}
		for _, token := range tokens {
			if _, ok := nounLexicon[token]; ok {
				nouns[example.Intent][token] = struct{}{}
			}
			if _, ok := verbLexicon[token]; ok {
				verbs[example.Intent][token] = struct{}{}
			}
		}
	}

	var trainErr error
	if len(corpus) == 0 {
		trainErr = apperrors.ErrEmptyCorpus
		c.log.Warn("Classifier trained on empty corpus, predictions degrade to fallback")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.nouns = nouns
	c.verbs = verbs
	c.phrases = phrases
	c.ready = true
	c.trainErr = trainErr
	if trainErr == nil {
		c.log.Info("Classifier trained", "intents", len(nouns), "phrases", len(phrases))
	}
	return trainErr
}

// Predict runs the full pipeline: override rules, keyword extraction,
// noun/verb scoring with the hard AND gate, then the corpus-wide overlap
// fallback. Entities are extracted independently of the winning intent.
func (c *Classifier) Predict(text string) domain.IntentPrediction {
	entities := nlp.ExtractEntities(text)

	for _, rule := range c.overrides {
		if rule.Matches(text) {
			return domain.IntentPrediction{
				Intent:     rule.Intent,
				Confidence: rule.Confidence,
				Entities:   entities,
			}
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.ready || c.trainErr != nil {
		return domain.IntentPrediction{Intent: IntentFallback, Confidence: 0, Entities: entities}
	}

	keywords := nlp.Tokenize(text)
	if len(keywords) == 0 {
		return domain.IntentPrediction{
			Intent:     IntentGreeting,
			Confidence: greetingConfidence,
			Entities:   entities,
		}
	}

	bestIntent, bestScore := "", 0.0
	for _, name := range c.sortedIntents() {
		nounScore, nounMatched := matchCategory(keywords, c.nouns[name])
		verbScore, verbMatched := matchCategory(keywords, c.verbs[name])

		// Defined vocabularies are necessary conditions: an intent that
		// names nouns (or verbs) none of the user's tokens matched is
		// discarded outright.
		if len(c.nouns[name]) > 0 && !nounMatched {
			continue
		}
		if len(c.verbs[name]) > 0 && !verbMatched {
			continue
		}

		total := nounScore*nounWeight + verbScore
		if total > bestScore {
			bestIntent, bestScore = name, total
		}
	}

	if bestIntent != "" {
		return domain.IntentPrediction{
			Intent:     bestIntent,
			Confidence: min(bestScore/confidenceDivisor, maxConfidence),
			Entities:   entities,
		}
	}
	return c.overlapFallback(keywords, entities)
}

// overlapFallback compares the user's tokens against every training
// phrase and takes the best intersection ratio if it clears the floor.
func (c *Classifier) overlapFallback(keywords []string, entities map[string]string) domain.IntentPrediction {
	bestIntent, best := "", 0.0
	for _, phrase := range c.phrases {
		denom := max(len(keywords), len(phrase.tokens))
		if denom == 0 {
			continue
		}
		overlap := float64(intersectionSize(keywords, phrase.tokens)) / float64(denom)
		if overlap > best {
			bestIntent, best = phrase.intent, overlap
		}
	}
	if best > overlapFloor {
		return domain.IntentPrediction{
			Intent:     bestIntent,
			Confidence: min(best, maxConfidence),
			Entities:   entities,
		}
	}
	return domain.IntentPrediction{Intent: IntentFallback, Confidence: 0, Entities: entities}
}

// TrainingError exposes the captured training failure, if any.
func (c *Classifier) TrainingError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trainErr
}

func (c *Classifier) sortedIntents() []string {
	names := make([]string, 0, len(c.nouns))
	for name := range c.nouns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// matchCategory scores the user keywords against one vocabulary.
// An exact hit contributes 100, a fuzzy hit 50 x similarity; either one
// marks the category as matched.
func matchCategory(keywords []string, vocab vocabulary) (float64, bool) {
	score, matched := 0.0, false
	for _, keyword := range keywords {
		for word := range vocab {
			if keyword == word {
				score += exactMatchScore
				matched = true
				continue
			}
			if sim := nlp.Similarity(keyword, word); sim >= nlp.TypoThreshold(max(len(keyword), len(word))) {
				score += fuzzyMatchScore * sim
				matched = true
			}
		}
	}
	return score, matched
}

func intersectionSize(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, token := range a {
		set[token] = struct{}{}
	}
	count := 0
	seen := make(map[string]struct{})
	for _, token := range b {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		if _, ok := set[token]; ok {
			count++
		}
	}
	return count
}
