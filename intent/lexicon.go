package intent

// Well-known intent labels produced by the classifier itself, regardless
// of what the training corpus defines.
const (
	IntentGreeting = "greeting"
	IntentError    = "error_handling"
	IntentFallback = "fallback"
)

// nounLexicon lists the domain entities a training phrase can mention.
// Entries are singular because tokenization singularizes first.
var nounLexicon = map[string]struct{}{
	"contact": {}, "deal": {}, "task": {}, "report": {}, "ticket": {},
	"message": {}, "setting": {}, "sale": {}, "email": {}, "phone": {},
	"meeting": {}, "lead": {}, "customer": {}, "account": {}, "note": {},
	"pipeline": {}, "invoice": {}, "reminder": {},
}

// verbLexicon lists the action words.
var verbLexicon = map[string]struct{}{
	"update": {}, "edit": {}, "delete": {}, "remove": {}, "create": {},
	"add": {}, "generate": {}, "show": {}, "change": {}, "modify": {},
	"send": {}, "schedule": {}, "search": {}, "find": {}, "view": {},
	"list": {}, "export": {},
}
