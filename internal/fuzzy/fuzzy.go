// Package fuzzy implements the subsequence matcher and weighted scorer used to
// rank package names against a search term.
package fuzzy

import "strings"

// Scoring weights.
const (
	MatchBonus       = 1.0
	ConsecutiveBonus = 1.0
	StreakStep       = 0.3
	StartBonus       = 4.0
	BoundaryBonus    = 2.5
	GapPenalty       = 0.15

	// The final score is divided by len(target)*LengthFactor + LengthOffset.
	LengthFactor = 0.15
	LengthOffset = 1.0
)

// isSeparator reports whether r starts a new word in a package name.
func isSeparator(r rune) bool {
	switch r {
	case '-', '_', '/', '.', ' ':
		return true
	}
	return false
}

// Match scores query against target. It returns 0 for an empty query or when
// target does not contain query as a case-insensitive subsequence.
func Match(query, target string) float64 {
	if query == "" {
		return 0
	}

	q := []rune(strings.ToLower(query))
	t := []rune(strings.ToLower(target))

	indices, ok := MatchSubsequence(q, t)
	if !ok {
		return 0
	}

	return Score(q, t, indices)
}

// MatchSubsequence returns the target positions of every query rune, found by a
// single left-to-right scan. The scan never restarts: each rune is searched for
// only after the position of the previous match.
func MatchSubsequence(query, target []rune) ([]int, bool) {
	out := make([]int, 0, len(query))
	ti := 0

	for _, qc := range query {
		found := -1
		for ti < len(target) {
			if target[ti] == qc {
				found = ti
				ti++
				break
			}
			ti++
		}
		if found < 0 {
			return nil, false
		}
		out = append(out, found)
	}

	return out, true
}

// Score computes the normalized weight of a successful match.
func Score(query, target []rune, indices []int) float64 {
	if len(query) == 0 || len(indices) == 0 {
		return 0
	}

	score := RawScore(target, indices)
	return score / (float64(len(target))*LengthFactor + LengthOffset)
}

// RawScore is the score before length normalization.
func RawScore(target []rune, indices []int) float64 {
	var score float64
	streak := 0

	for i, idx := range indices {
		score += MatchBonus

		if i > 0 && indices[i-1]+1 == idx {
			streak++
			score += ConsecutiveBonus + float64(streak)*StreakStep
		} else {
			streak = 0
		}

		if idx == 0 {
			score += StartBonus
		} else if isSeparator(target[idx-1]) {
			score += BoundaryBonus
		}

		if i > 0 {
			gap := idx - indices[i-1] - 1
			if gap > 0 {
				score -= float64(gap) * GapPenalty
			}
		}
	}

	return score
}
