package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// TypeAhead appends text to the level's query and moves the cursor to the
// best matching item. When the extended query matches nothing, the search
// restarts from text alone. It returns the matched index or -1.
func (l *Level) TypeAhead(text string) int {
	if text == "" {
		return -1
	}
	l.Query += text
	idx := BestMatchIndex(l.Items, l.Query)
	if idx < 0 && l.Query != text {
		l.Query = text
		idx = BestMatchIndex(l.Items, l.Query)
	}
	if idx < 0 {
		l.Query = ""
		return -1
	}
	l.Cursor = idx
	return idx
}

// ResetQuery clears the type-ahead buffer.
func (l *Level) ResetQuery() {
	l.Query = ""
}

// BestMatchIndex returns the best index for the query among the provided
// items, or -1 when nothing matches. Exact and prefix matches on the label
// win over fuzzy ones.
func BestMatchIndex(items []Item, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(items) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Label, trimmed) || strings.EqualFold(item.ID, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.ID), lower) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return -1
	}
	return best.OriginalIndex
}
