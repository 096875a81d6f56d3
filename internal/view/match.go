package view

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// BestMatch returns the index of the label that best matches the query:
// exact match first, then prefix, then substring, then the closest fuzzy
// rank. Returns -1 when the query is blank or nothing matches at all.
func BestMatch(labels []string, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(labels) == 0 {
		return -1
	}
	lowered := strings.ToLower(trimmed)
	for i, label := range labels {
		if strings.EqualFold(label, trimmed) {
			return i
		}
	}
	for i, label := range labels {
		if strings.HasPrefix(strings.ToLower(label), lowered) {
			return i
		}
	}
	for i, label := range labels {
		if strings.Contains(strings.ToLower(label), lowered) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	sort.Sort(ranks)
	return ranks[0].OriginalIndex
}
