package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"summary-share/apperrors"
	"summary-share/cmd/api/dto"
	"summary-share/cmd/api/middleware"
	"summary-share/cmd/api/services"
)

type reactionRequest struct {
	Active bool `json:"active"`
}

// ReactionHandler handles POST /summary/id/:id/{like,dislike,favorite}.
// The body's active flag sets or clears the viewer's membership in the
// reaction set; repeating the same request is a no-op.
func ReactionHandler(svc *services.SummaryService, reaction string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperrors.ErrValidation.WithMessage("invalid summary id"))
			return
		}

		var req reactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperrors.ErrValidation.WithMessage("invalid request body"))
			return
		}

		summary, err := svc.React(c.Request.Context(), middleware.CurrentUserID(c), id, reaction, req.Active)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.ReactionCountsDTO{
			ID:        summary.ID,
			Likes:     summary.Likes,
			Dislikes:  summary.Dislikes,
			Favorites: summary.Favorites,
		})
	}
}
