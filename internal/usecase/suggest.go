package usecase

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// closestMatch suggests the candidate the user most likely meant. Subsequence
// matches win over edit distance; nothing is suggested past maxEditDistance.
func closestMatch(input string, candidates []string) string {
	input = strings.TrimSpace(input)
	if input == "" || len(candidates) == 0 {
		return ""
	}

	if ranks := fuzzy.RankFindNormalizedFold(input, candidates); len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDistance := "", -1
	lowered := strings.ToLower(input)
	for _, c := range candidates {
		d := fuzzy.LevenshteinDistance(lowered, strings.ToLower(c))
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = c, d
		}
	}
	if bestDistance > maxEditDistance(len(input)) {
		return ""
	}
	return best
}

func maxEditDistance(n int) int {
	return max(2, n/3)
}

func suggestion(input string, candidates []string) string {
	if s := closestMatch(input, candidates); s != "" {
		return ", did you mean " + s + "?"
	}
	return ""
}
