package nlp

import "regexp"

var (
	personPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
	emailPattern  = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// ExtractEntities pulls structured values out of free text, independently
// of any intent. A capitalized word sequence becomes a "person" entity and
// an email-shaped token an "email" entity. The last capitalized sequence
// wins so that a sentence-initial verb ("Delete contact John") does not
// shadow the actual name.
func ExtractEntities(text string) map[string]string {
	entities := make(map[string]string)
	if people := personPattern.FindAllString(text, -1); len(people) > 0 {
		entities["person"] = people[len(people)-1]
	}
	if email := emailPattern.FindString(text); email != "" {
		entities["email"] = email
	}
	return entities
}
