package service

import (
	"strings"

	sessiondomain "rovi/internal/modules/session/domain"
)

// categoryAliases maps common spoken names onto the closed category set.
var categoryAliases = map[string]string{
	"groceries":      "Food",
	"grocery":        "Food",
	"dining":         "Food",
	"meals":          "Food",
	"transportation": "Transport",
	"commute":        "Transport",
	"transit":        "Transport",
	"clothes":        "Shopping",
	"clothing":       "Shopping",
	"utilities":      "Bills",
	"rent":           "Bills",
	"fun":            "Entertainment",
	"movies":         "Entertainment",
	"leisure":        "Entertainment",
}

// ResolveCategory maps a user-typed token onto a known expense category:
// exact match first, then the alias table, then prefix, then substring. A
// token that resolves to nothing is used verbatim so the write still lands
// somewhere inspectable. The boolean reports whether the token was rewritten
// to a different category.
func ResolveCategory(raw string) (string, bool) {
	for _, category := range sessiondomain.Categories {
		if strings.EqualFold(raw, category) {
			return category, false
		}
	}
	lower := strings.ToLower(raw)
	if category, ok := categoryAliases[lower]; ok {
		return category, true
	}
	for _, category := range sessiondomain.Categories {
		if strings.HasPrefix(strings.ToLower(category), lower) {
			return category, true
		}
	}
	for _, category := range sessiondomain.Categories {
		cl := strings.ToLower(category)
		if strings.Contains(cl, lower) || strings.Contains(lower, cl) {
			return category, true
		}
	}
	return raw, false
}
