package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSearchDistance bounds the edit distance accepted for a fuzzy name match.
const maxSearchDistance = 2

// FilterByCategory keeps the items of one category, preserving order.
func FilterByCategory(items []Item, c Category) []Item {
	var out []Item
	for _, it := range items {
		if it.Category == c {
			out = append(out, it)
		}
	}
	return out
}

// ByID finds an item by id.
func ByID(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Search matches query against item names and descriptions. Substring hits
// rank first; otherwise a name word within maxSearchDistance edits matches.
// Ties keep catalog order. An empty query returns every item.
func Search(items []Item, query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]Item(nil), items...)
	}

	type hit struct {
		item  Item
		score int
	}
	var hits []hit
	for _, it := range items {
		name := strings.ToLower(it.Name)
		if strings.Contains(name, q) || strings.Contains(strings.ToLower(it.Description), q) {
			hits = append(hits, hit{item: it})
			continue
		}
		best := -1
		for _, word := range strings.Fields(name) {
			d := levenshtein.ComputeDistance(word, q)
			if best < 0 || d < best {
				best = d
			}
		}
		if best >= 0 && best <= maxSearchDistance {
			hits = append(hits, hit{item: it, score: best})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score < hits[j].score })

	out := make([]Item, len(hits))
	for i, h := range hits {
		out[i] = h.item
	}
	return out
}
