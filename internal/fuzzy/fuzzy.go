package fuzzy

import "strings"

// Scoring weights for the subsequence matcher. Tuned for filenames:
// matches that start a word or path segment beat matches buried mid-name.
const (
	baseScore        = 10 // every matched character
	consecutiveBonus = 5  // match immediately follows the previous one
	firstCharBonus   = 15 // match at the very start of the candidate
	separatorBonus   = 10 // match right after / _ - .
)

// Match holds the score and matched character positions for one candidate.
// Positions are rune indices into the candidate, used for highlighting.
type Match struct {
	Score     int
	Positions []int
}

func isSeparator(r rune) bool {
	return r == '/' || r == '_' || r == '-' || r == '.'
}

// Find performs a case-insensitive greedy subsequence match of pattern
// against candidate. All pattern characters must appear in candidate in
// order; otherwise there is no match. An empty pattern matches everything
// with score 0. Longer candidates are penalized so that equally good
// matches rank shorter names first.
//
// Find is pure and safe to call concurrently.
func Find(pattern, candidate string) (Match, bool) {
	if pattern == "" {
		return Match{}, true
	}

	patternRunes := []rune(strings.ToLower(pattern))
	candidateRunes := []rune(strings.ToLower(candidate))

	score := 0
	positions := make([]int, 0, len(patternRunes))
	patternIdx := 0
	lastMatch := -1

	for i, r := range candidateRunes {
		if patternIdx >= len(patternRunes) || r != patternRunes[patternIdx] {
			continue
		}

		score += baseScore
		if i == lastMatch+1 && lastMatch >= 0 {
			score += consecutiveBonus
		}
		if i == 0 {
			score += firstCharBonus
		}
		if i > 0 && isSeparator(candidateRunes[i-1]) {
			score += separatorBonus
		}

		positions = append(positions, i)
		lastMatch = i
		patternIdx++
	}

	// Subsequence containment: every pattern character must have matched.
	if patternIdx < len(patternRunes) {
		return Match{}, false
	}

	score -= len(candidateRunes)

	return Match{Score: score, Positions: positions}, true
}
