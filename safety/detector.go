// Package safety implements the crisis-detection override: a keyword
// detector over user text and the canned reply that replaces any
// model-generated response when it fires.
package safety

import "strings"

// crisisPhrases is the fixed literal-substring list used to detect
// self-harm risk language.
var crisisPhrases = []string{
	"kill myself",
	"suicide",
	"end it all",
	"want to die",
	"harm myself",
	"self harm",
	"hurt myself",
	"not want to live",
}

// Detector flags user text that contains crisis language, using
// case-insensitive substring containment over a fixed phrase list.
//
// Known limitation: keyword matching is inherently incomplete. It misses
// paraphrased risk language and fires on benign mentions such as song
// lyrics or quoted text. False negatives are expected.
type Detector struct {
	phrases []string
}

// NewDetector returns a detector over the fixed crisis phrase list.
func NewDetector() *Detector {
	return &Detector{phrases: crisisPhrases}
}

// Detect reports whether text contains any crisis phrase. Deterministic, no
// side effects.
func (d *Detector) Detect(text string) bool {
	lowered := strings.ToLower(text)
	for _, phrase := range d.phrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}
