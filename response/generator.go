// Package response selects and fills the canned reply for a classified
// message. Selection is pattern-scored: templates compete on how much of
// their literal pattern parts appear in the message.
package response

import (
	"log/slog"
	"regexp"
	"strings"

	"crm-assistant/domain"
	"crm-assistant/nlp"
)

const (
	partScore      = 30.0
	fuzzyPartScore = 15.0
	deleteBoost    = 100.0
	failureBoost   = 200.0
)

var (
	nonWordUpper   = regexp.MustCompile(`[^A-Z0-9\s]+`)
	deletePattern  = regexp.MustCompile(`(?i)\b(delete|remove)\b`)
	failurePattern = regexp.MustCompile(`(?i)\b(fail|failed|error|bug|issue|broke|broken|crash|crashed)\b|(?i:not working)`)

	deleteParts  = []string{"DELETE", "REMOVE"}
	failureParts = []string{"ERROR", "FAIL", "NOT WORKING", "BUG", "ISSUE", "BROKEN", "CRASH"}
)

type Generator struct {
	log       *slog.Logger
	templates map[string][]Template
}

func NewGenerator(templates map[string][]Template, log *slog.Logger) *Generator {
	return &Generator{log: log, templates: templates}
}

// Generate picks the highest-scoring template of the predicted intent and
// substitutes the extracted entities into it. Ties keep the first
// template; intents without templates fall back to the catch-all.
func (g *Generator) Generate(prediction domain.IntentPrediction, raw string) string {
	templates := g.templates[prediction.Intent]
	if len(templates) == 0 {
		templates = g.templates["fallback"]
		if len(templates) == 0 {
			return ""
		}
	}

	normalized := normalizeMessage(raw)
	tokens := strings.Fields(normalized)

	// Message-wide boosts: phrasing nuance ("delete" vs a generic
	// "update", failure wording) re-ranks the templates whose own
	// pattern carries that vocabulary.
	deleteHit := deletePattern.MatchString(raw)
	failureHit := failurePattern.MatchString(raw)

	winner := templates[0]
	bestScore := -1.0
	for _, template := range templates {
		score := scoreParts(splitPattern(template.Pattern), normalized, tokens)
		if deleteHit && patternMentions(template.Pattern, deleteParts) {
			score += deleteBoost
		}
		if failureHit && patternMentions(template.Pattern, failureParts) {
			score += failureBoost
		}
		if score > bestScore {
			winner, bestScore = template, score
		}
	}

	return substituteEntities(winner.Reply, prediction.Entities)
}

// scoreParts awards 30 per literal part found as a substring of the
// message, otherwise 15 x similarity for the best fuzzy token hit.
func scoreParts(parts []string, normalized string, tokens []string) float64 {
	score := 0.0
	for _, part := range parts {
		if strings.Contains(normalized, part) {
			score += partScore
			continue
		}
		best := 0.0
		threshold := nlp.TypoThreshold(len([]rune(part)))
		for _, token := range tokens {
			if sim := nlp.Similarity(token, part); sim >= threshold && sim > best {
				best = sim
			}
		}
		score += fuzzyPartScore * best
	}
	return score
}

// splitPattern breaks a wildcard pattern into its required literal parts.
func splitPattern(pattern string) []string {
	var parts []string
	for _, part := range strings.Split(pattern, "*") {
		part = strings.TrimSpace(strings.ToUpper(part))
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func patternMentions(pattern string, vocabulary []string) bool {
	upper := strings.ToUpper(pattern)
	for _, word := range vocabulary {
		if strings.Contains(upper, word) {
			return true
		}
	}
	return false
}

func normalizeMessage(raw string) string {
	return strings.TrimSpace(nonWordUpper.ReplaceAllString(strings.ToUpper(raw), " "))
}

// substituteEntities fills the [PERSON] and [EMAIL] placeholders from the
// extracted entities; missing entities degrade to neutral wording.
func substituteEntities(reply string, entities map[string]string) string {
	person, email := "the contact", "their address"
	if entities != nil {
		if v, ok := entities["person"]; ok {
			person = v
		}
		if v, ok := entities["email"]; ok {
			email = v
		}
	}
	reply = strings.ReplaceAll(reply, "[PERSON]", person)
	reply = strings.ReplaceAll(reply, "[EMAIL]", email)
	return reply
}
