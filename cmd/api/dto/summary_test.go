package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"summary-share/models"
)

func TestMapSummaryPreviewStripsMarkup(t *testing.T) {
	s := &models.Summary{
		ID:       77,
		Title:    "Release Notes",
		Summary:  "<h1>v2</h1><p>Faster <strong>startup</strong>.</p>",
		Category: "technology",
		Likes:    3,
	}

	preview := MapSummaryPreview(s)
	assert.Equal(t, int64(77), preview.ID)
	assert.Equal(t, "v2 Faster startup .", preview.Summary)
	assert.Equal(t, 3, preview.Likes)
	assert.Nil(t, preview.Author)
}

func TestMapSummaryPreviewTruncatesExcerpt(t *testing.T) {
	long := "<p>" + strings.Repeat("é", 250) + "</p>"
	preview := MapSummaryPreview(&models.Summary{Summary: long})

	assert.Equal(t, 100, len([]rune(preview.Summary)))
	assert.Equal(t, strings.Repeat("é", 100), preview.Summary)
}

func TestMapSummaryKeepsFullBody(t *testing.T) {
	s := &models.Summary{
		ID:      1,
		Summary: "<p>" + strings.Repeat("x", 250) + "</p>",
		Tags:    models.StringList{"go"},
		Author:  &models.User{ID: 9, Username: "ann"},
	}

	full := MapSummary(s)
	assert.Equal(t, s.Summary, full.Summary)
	assert.Equal(t, []string{"go"}, full.Tags)
	assert.Equal(t, "ann", full.Author.Username)
}

func TestMapSummaryPreviews(t *testing.T) {
	out := MapSummaryPreviews(nil)
	assert.NotNil(t, out)
	assert.Len(t, out, 0)

	out = MapSummaryPreviews([]models.Summary{{ID: 1}, {ID: 2}})
	assert.Len(t, out, 2)
	assert.Equal(t, int64(2), out[1].ID)
}
