package models

import "strings"

// Categories is the closed category vocabulary. Order matters: snapping
// picks the first entry that matches.
var Categories = []string{
	"technology",
	"business",
	"health & wellness",
	"education",
	"lifestyle",
	"entertainment",
	"science",
	"politics",
	"art & culture",
	"sports",
	"food & drink",
	"travel",
	"other",
}

// SnapCategory maps a free-text category guess from the classifier onto the
// vocabulary. The first vocabulary entry that contains the guess as a
// case-insensitive substring wins; an empty guess or no match yields the
// unclassified value (empty string).
func SnapCategory(guess string) string {
	guess = strings.ToLower(strings.TrimSpace(guess))
	if guess == "" {
		return ""
	}
	for _, category := range Categories {
		if strings.Contains(category, guess) {
			return category
		}
	}
	return ""
}

// IsValidCategory reports whether value is empty or one of the vocabulary
// entries.
func IsValidCategory(value string) bool {
	if value == "" {
		return true
	}
	for _, category := range Categories {
		if category == value {
			return true
		}
	}
	return false
}
