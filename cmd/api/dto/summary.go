package dto

import (
	"time"

	"summary-share/fetcher"
	"summary-share/models"
)

// excerptLength is the preview length in runes after markup stripping.
const excerptLength = 100

// SummaryDTO is the full record shape for detail responses.
type SummaryDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Author      *UserDTO  `json:"author"`
	Category    string    `json:"category"`
	ContentType string    `json:"content_type"`
	UserPrompt  string    `json:"user_prompt"`
	Likes       int       `json:"likes"`
	Dislikes    int       `json:"dislikes"`
	Favorites   int       `json:"favorites"`
	Tags        []string  `json:"tags"`
	IsPrivate   bool      `json:"is_private"`
	URL         string    `json:"url"`
	RawText     string    `json:"raw_text"`
	CreatedAt   time.Time `json:"created_at"`
}

// SummaryPreviewDTO is the denormalized projection for list views: a
// truncated plain-text excerpt instead of the full body, counters instead
// of actor lists.
type SummaryPreviewDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Author      *UserDTO  `json:"author"`
	Category    string    `json:"category"`
	ContentType string    `json:"content_type"`
	Likes       int       `json:"likes"`
	Favorites   int       `json:"favorites"`
	IsPrivate   bool      `json:"is_private"`
	CreatedAt   time.Time `json:"created_at"`
}

func MapSummary(s *models.Summary) SummaryDTO {
	return SummaryDTO{
		ID:          s.ID,
		Title:       s.Title,
		Summary:     s.Summary,
		Author:      mapAuthor(s.Author),
		Category:    s.Category,
		ContentType: s.ContentType,
		UserPrompt:  s.UserPrompt,
		Likes:       s.Likes,
		Dislikes:    s.Dislikes,
		Favorites:   s.Favorites,
		Tags:        s.Tags,
		IsPrivate:   s.IsPrivate,
		URL:         s.URL,
		RawText:     s.RawText,
		CreatedAt:   s.CreatedAt,
	}
}

func MapSummaryPreview(s *models.Summary) SummaryPreviewDTO {
	return SummaryPreviewDTO{
		ID:          s.ID,
		Title:       s.Title,
		Summary:     truncate(fetcher.StripMarkup(s.Summary), excerptLength),
		Author:      mapAuthor(s.Author),
		Category:    s.Category,
		ContentType: s.ContentType,
		Likes:       s.Likes,
		Favorites:   s.Favorites,
		IsPrivate:   s.IsPrivate,
		CreatedAt:   s.CreatedAt,
	}
}

func MapSummaryPreviews(summaries []models.Summary) []SummaryPreviewDTO {
	out := make([]SummaryPreviewDTO, 0, len(summaries))
	for i := range summaries {
		out = append(out, MapSummaryPreview(&summaries[i]))
	}
	return out
}

func mapAuthor(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	d := MapUser(u)
	return &d
}

// truncate returns s truncated to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
