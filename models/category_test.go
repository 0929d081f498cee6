package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapCategoryExactMatch(t *testing.T) {
	assert.Equal(t, "technology", SnapCategory("technology"))
	assert.Equal(t, "sports", SnapCategory("Sports"))
}

func TestSnapCategorySubstringMatch(t *testing.T) {
	// The guess only needs to be contained by a vocabulary entry.
	assert.Equal(t, "technology", SnapCategory("tech"))
	assert.Equal(t, "health & wellness", SnapCategory("health"))
	assert.Equal(t, "health & wellness", SnapCategory("wellness"))
	assert.Equal(t, "food & drink", SnapCategory("food"))
}

func TestSnapCategoryFirstEntryWins(t *testing.T) {
	// "art" is a substring of "art & culture" only, but single letters can
	// match several entries; the earliest vocabulary entry is the answer.
	assert.Equal(t, "technology", SnapCategory("t"))
	assert.Equal(t, "art & culture", SnapCategory("art"))
}

func TestSnapCategoryNormalizesInput(t *testing.T) {
	assert.Equal(t, "business", SnapCategory("  BUSINESS  "))
	assert.Equal(t, "entertainment", SnapCategory("Entertain"))
}

func TestSnapCategoryNoMatch(t *testing.T) {
	assert.Equal(t, "", SnapCategory("astrology"))
	assert.Equal(t, "", SnapCategory(""))
	assert.Equal(t, "", SnapCategory("   "))
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory(""))
	assert.True(t, IsValidCategory("technology"))
	assert.True(t, IsValidCategory("art & culture"))
	assert.False(t, IsValidCategory("Technology"))
	assert.False(t, IsValidCategory("astrology"))
}
