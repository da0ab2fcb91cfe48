package useragent

import "sort"

func init() {
	// Sort rules by OrderHint so insertion order in the table never
	// changes detection precedence.
	sort.Slice(browserRules, func(i, j int) bool {
		return browserRules[i].OrderHint < browserRules[j].OrderHint
	})
}
