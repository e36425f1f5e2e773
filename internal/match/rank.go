package match

import "sort"

// Candidate represents one known name scored against an input.
type Candidate struct {
	// Name is the known name as registered.
	Name string

	// Score is the normalized name similarity (0-1), higher is better.
	Score float64

	// Metadata for debugging/explanation
	NormalizedInput string
	NormalizedName  string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every known name against the input.
// Returns candidates sorted by score (descending).
func Rank(input string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))

	inputNorm := NormalizeIdent(input)

	for _, name := range known {
		nameNorm := NormalizeIdent(name)

		candidates = append(candidates, Candidate{
			Name:            name,
			Score:           LevenshteinNormalized(inputNorm, nameNorm),
			NormalizedInput: inputNorm,
			NormalizedName:  nameNorm,
		})
	}

	// Sort by score (descending), then by name for determinism
	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to max known names similar enough to the input to
// be offered as corrections.
func Suggest(input string, known []string, max int) []string {
	candidates := Rank(input, known).AboveThreshold(DefaultMinScore).Top(max)
	if len(candidates) == 0 {
		return nil
	}

	names := make([]string, len(candidates))
	for i, cand := range candidates {
		names[i] = cand.Name
	}

	return names
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	// Higher score comes first
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}
	// Tie-breaker: alphabetical by name
	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}
	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}
	diff := c[0].Score - c[1].Score
	return diff < threshold
}

// AboveThreshold returns candidates with score above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}
	return result
}

// Thresholds for offering suggestions.
const (
	// DefaultMinScore is the minimum similarity for a name to be suggested.
	DefaultMinScore = 0.5
	// DefaultMaxSuggestions caps how many names Suggest is asked for.
	DefaultMaxSuggestions = 3
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.1
)
