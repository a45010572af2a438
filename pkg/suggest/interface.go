// Package suggest turns model predictions into user facing suggestions: it
// keeps the capitalization the user typed and caches ranked results.
package suggest

// ICompleter defines the interface for word completion engines
type ICompleter interface {
	// Complete returns at most limit suggestions for prefix, best first.
	// A limit of zero or less uses the engine's default.
	Complete(prefix string, limit int) []Suggestion

	// Stats returns statistics about the model and the result cache
	Stats() map[string]int
}

// Suggestion is one ranked word.
type Suggestion struct {
	Word      string
	Score     float64
	Frequency int
}
