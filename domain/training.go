package domain

// TrainingExample is a single (phrase, intent) pair of the static corpus.
type TrainingExample struct {
	Phrase string
	Intent string
}

// IntentPrediction is the classifier output for one message.
// Confidence is in [0,1]. Entities holds values extracted from the raw
// text (person name, email) independently of the winning intent.
type IntentPrediction struct {
	Intent     string
	Confidence float64
	Entities   map[string]string
}
