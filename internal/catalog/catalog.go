// Package catalog implements the storefront's search and filter
// predicates. Everything here is pure: callers decide when to apply a
// pass (the grid only refilters on explicit submit, typing alone only
// refreshes suggestions).
package catalog

import (
	"strings"

	"rentaride/internal/db"
)

// FilterMode selects which field the secondary filter matches against.
type FilterMode string

const (
	FilterByCategory FilterMode = "category"
	FilterByBrand    FilterMode = "brand"
)

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// DescriptionPrefix returns the first five words of a description, the
// portion offered as a search suggestion.
func DescriptionPrefix(description string) string {
	words := strings.Fields(description)
	if len(words) > 5 {
		words = words[:5]
	}
	return strings.Join(words, " ")
}

// Search keeps cars whose brand, model, type or description contains
// term, case-insensitive. A blank term keeps everything.
func Search(cars []db.Car, term string) []db.Car {
	term = strings.TrimSpace(term)
	if term == "" {
		return cars
	}
	var out []db.Car
	for _, c := range cars {
		if containsFold(c.Brand, term) ||
			containsFold(c.CarModel, term) ||
			containsFold(c.CarType, term) ||
			containsFold(c.Description, term) {
			out = append(out, c)
		}
	}
	return out
}

// Filter applies the secondary category-or-brand pass.
func Filter(cars []db.Car, mode FilterMode, term string) []db.Car {
	term = strings.TrimSpace(term)
	if term == "" {
		return cars
	}
	var out []db.Car
	for _, c := range cars {
		field := c.CarType
		if mode == FilterByBrand {
			field = c.Brand
		}
		if containsFold(field, term) {
			out = append(out, c)
		}
	}
	return out
}

// Apply composes both passes, search first then the secondary filter.
func Apply(cars []db.Car, searchTerm, filterTerm string, mode FilterMode) []db.Car {
	return Filter(Search(cars, searchTerm), mode, filterTerm)
}

// Suggestions returns the deduplicated ordered terms (brand, type,
// model, description prefix per car) matching text case-insensitively.
// Empty text matches every term.
func Suggestions(cars []db.Car, text string) []string {
	var suggestions []string
	seen := map[string]bool{}
	for _, c := range cars {
		terms := []string{
			c.Brand,
			c.CarType,
			c.CarModel,
			DescriptionPrefix(c.Description),
		}
		for _, term := range terms {
			if term == "" || seen[term] || !containsFold(term, text) {
				continue
			}
			seen[term] = true
			suggestions = append(suggestions, term)
		}
	}
	return suggestions
}
