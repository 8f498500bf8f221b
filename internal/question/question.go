package question

// TestType distinguishes the two assessment variants.
type TestType string

const (
	// TypePractice is the untimed, smaller-sample variant.
	TypePractice TestType = "practice"

	// TypeFinal is the timed, larger-sample variant.
	TypeFinal TestType = "final"
)

// Selection caps per test type. Pools smaller than the cap are
// returned whole, shuffled.
const (
	PracticeCap = 25
	FinalCap    = 50
)

// Question is one multiple-choice item. Immutable once loaded.
type Question struct {
	// ID is unique within the module's pool.
	ID string `json:"id"`

	// Prompt is the question text shown to the candidate.
	Prompt string `json:"prompt"`

	// Options holds the answer choices, typically 4.
	Options []string `json:"options"`

	// Correct is the zero-based index into Options.
	Correct int `json:"correct"`

	// Explanation is shown during post-submission review.
	Explanation string `json:"explanation"`
}

// Cap returns the selection cap for the given test type. Unknown types
// get the practice cap, the more conservative of the two.
func Cap(tt TestType) int {
	if tt == TypeFinal {
		return FinalCap
	}
	return PracticeCap
}
