// Package repositories implements the data access layer on GORM/Postgres.
package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"summary-share/models"
)

// Reaction names accepted by the engagement operations.
const (
	ReactionLike     = "like"
	ReactionDislike  = "dislike"
	ReactionFavorite = "favorite"
)

// ErrRecordNotFound is returned when a lookup matches nothing.
var ErrRecordNotFound = gorm.ErrRecordNotFound

// ListQuery is the explicit query specification for summary listings. One
// struct, one bounded SQL query; no lazy queryset chaining.
type ListQuery struct {
	// Sort is one of "date", "likes", "favorites". Any other value keeps
	// the store's natural order.
	Sort string

	// StartAfter is the cursor: the id of the last record the client has
	// seen. Zero means no cursor. An unknown id is ignored.
	StartAfter int64

	ContentType string
	Category    string

	// ViewerID is the authenticated user, zero when anonymous. Anonymous
	// and non-owner viewers only see public records.
	ViewerID uint

	// MineOnly restricts results to the viewer's own summaries.
	MineOnly bool

	// Private, when set, additionally filters on is_private.
	Private *bool

	Limit int
}

// SummaryRepository defines the store operations for summaries.
type SummaryRepository interface {
	Create(ctx context.Context, summary *models.Summary) error
	GetByID(ctx context.Context, id int64) (*models.Summary, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q ListQuery) ([]models.Summary, error)
	Search(ctx context.Context, query string, limit int, viewerID uint) ([]models.Summary, error)
	SetReaction(ctx context.Context, userID uint, summaryID int64, reaction string, active bool) (*models.Summary, error)
}

type summaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) Create(ctx context.Context, summary *models.Summary) error {
	return r.db.WithContext(ctx).Create(summary).Error
}

func (r *summaryRepository) GetByID(ctx context.Context, id int64) (*models.Summary, error) {
	var summary models.Summary
	err := r.db.WithContext(ctx).Preload("Author").First(&summary, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *summaryRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Summary{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// sortColumns maps sort keys to the column the listing orders and paginates
// on. Keys outside this map fall through to natural order.
var sortColumns = map[string]string{
	"date":      "created_at",
	"likes":     "likes",
	"favorites": "favorites",
}

func (r *summaryRepository) List(ctx context.Context, q ListQuery) ([]models.Summary, error) {
	tx := r.db.WithContext(ctx).Model(&models.Summary{}).Preload("Author")
	tx = applyVisibility(tx, q.ViewerID)

	if q.MineOnly && q.ViewerID != 0 {
		tx = tx.Where("author_id = ?", q.ViewerID)
	}
	if q.Private != nil {
		tx = tx.Where("is_private = ?", *q.Private)
	}
	if q.ContentType != "" {
		tx = tx.Where("content_type = ?", q.ContentType)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}

	column, sorted := sortColumns[q.Sort]

	if q.StartAfter != 0 && sorted {
		var cursor models.Summary
		err := r.db.WithContext(ctx).First(&cursor, "id = ?", q.StartAfter).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Unknown cursor: list from the top, same as no cursor.
		case err != nil:
			return nil, err
		default:
			switch q.Sort {
			case "date":
				tx = tx.Where("created_at < ?", cursor.CreatedAt)
			case "likes":
				tx = tx.Where("likes < ?", cursor.Likes)
			case "favorites":
				tx = tx.Where("favorites < ?", cursor.Favorites)
			}
		}
	}

	if sorted {
		tx = tx.Order(fmt.Sprintf("%s DESC", column))
	}

	var summaries []models.Summary
	if err := tx.Limit(q.Limit).Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *summaryRepository) Search(ctx context.Context, query string, limit int, viewerID uint) ([]models.Summary, error) {
	pattern := "%" + escapeLike(query) + "%"
	tx := r.db.WithContext(ctx).Model(&models.Summary{}).Preload("Author")
	tx = applyVisibility(tx, viewerID)
	tx = tx.Where("title ILIKE ? OR tags ILIKE ?", pattern, pattern)

	var summaries []models.Summary
	if err := tx.Limit(limit).Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

// applyVisibility restricts a query so anonymous viewers see only public
// records and authenticated viewers additionally see their own.
func applyVisibility(tx *gorm.DB, viewerID uint) *gorm.DB {
	if viewerID == 0 {
		return tx.Where("is_private = ?", false)
	}
	return tx.Where("is_private = ? OR author_id = ?", false, viewerID)
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}

type reactionSpec struct {
	joinTable string
	counter   string
}

var reactions = map[string]reactionSpec{
	ReactionLike:     {joinTable: "profile_likes", counter: "likes"},
	ReactionDislike:  {joinTable: "profile_dislikes", counter: "dislikes"},
	ReactionFavorite: {joinTable: "profile_favorites", counter: "favorites"},
}

// SetReaction idempotently adds or removes the viewer from a reaction set
// and keeps the summary's counter in step, in one transaction. Setting a
// reaction that is already set (or clearing one that is not) is a no-op.
func (r *summaryRepository) SetReaction(ctx context.Context, userID uint, summaryID int64, reaction string, active bool) (*models.Summary, error) {
	spec, ok := reactions[reaction]
	if !ok {
		return nil, fmt.Errorf("unknown reaction %q", reaction)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var summary models.Summary
		if err := tx.First(&summary, "id = ?", summaryID).Error; err != nil {
			return err
		}

		var member int64
		if err := tx.Table(spec.joinTable).
			Where("user_profile_user_id = ? AND summary_id = ?", userID, summaryID).
			Count(&member).Error; err != nil {
			return err
		}

		switch {
		case active && member == 0:
			if err := tx.Exec(
				fmt.Sprintf("INSERT INTO %s (user_profile_user_id, summary_id) VALUES (?, ?)", spec.joinTable),
				userID, summaryID,
			).Error; err != nil {
				return err
			}
			return tx.Model(&models.Summary{}).Where("id = ?", summaryID).
				UpdateColumn(spec.counter, gorm.Expr(spec.counter+" + 1")).Error
		case !active && member > 0:
			if err := tx.Exec(
				fmt.Sprintf("DELETE FROM %s WHERE user_profile_user_id = ? AND summary_id = ?", spec.joinTable),
				userID, summaryID,
			).Error; err != nil {
				return err
			}
			return tx.Model(&models.Summary{}).Where("id = ?", summaryID).
				UpdateColumn(spec.counter, gorm.Expr(spec.counter+" - 1")).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, summaryID)
}
