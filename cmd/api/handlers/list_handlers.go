package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"summary-share/apperrors"
	"summary-share/cmd/api/dto"
	"summary-share/cmd/api/middleware"
	"summary-share/cmd/api/services"
	"summary-share/repositories"
)

// parseLimit enforces that limit is a positive integer; it is never
// silently clamped.
func parseLimit(raw string) (int, error) {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, apperrors.ErrValidation.WithMessage("limit must be a positive integer")
	}
	return limit, nil
}

// ListSummariesHandler handles
// GET /summary?limit&sort&startAfter&contentType&category&me&private.
func ListSummariesHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := parseLimit(c.Query("limit"))
		if err != nil {
			respondError(c, err)
			return
		}

		q := repositories.ListQuery{
			Sort:        c.Query("sort"),
			ContentType: c.Query("contentType"),
			Category:    c.Query("category"),
			ViewerID:    middleware.CurrentUserID(c),
			Limit:       limit,
		}

		if raw := c.Query("startAfter"); raw != "" {
			cursor, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				respondError(c, apperrors.ErrValidation.WithMessage("startAfter must be a summary id"))
				return
			}
			q.StartAfter = cursor
		}

		if c.Query("me") == "true" && q.ViewerID != 0 {
			q.MineOnly = true
		}
		if raw := c.Query("private"); raw != "" && q.ViewerID != 0 {
			private := raw == "true"
			q.Private = &private
		}

		summaries, err := svc.List(c.Request.Context(), q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MapSummaryPreviews(summaries))
	}
}

// SearchSummariesHandler handles GET /summary/search?query&limit.
func SearchSummariesHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		if missing := missingFields([2]string{"query", query}); len(missing) > 0 {
			respondMissingFields(c, missing)
			return
		}
		limit, err := parseLimit(c.Query("limit"))
		if err != nil {
			respondError(c, err)
			return
		}

		summaries, err := svc.Search(c.Request.Context(), query, limit, middleware.CurrentUserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MapSummaryPreviews(summaries))
	}
}
