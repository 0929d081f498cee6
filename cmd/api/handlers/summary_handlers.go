package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"summary-share/apperrors"
	"summary-share/cmd/api/dto"
	"summary-share/cmd/api/middleware"
	"summary-share/cmd/api/services"
)

// maxUploadBytes bounds uploaded PDF size.
const maxUploadBytes = 20 << 20

type createWebsiteRequest struct {
	URL     string `json:"url"`
	Prompt  string `json:"prompt"`
	Private bool   `json:"private"`
}

// CreateWebsiteSummaryHandler handles POST /summary/website.
func CreateWebsiteSummaryHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createWebsiteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperrors.ErrValidation.WithMessage("invalid request body"))
			return
		}
		if missing := missingFields([2]string{"url", req.URL}, [2]string{"prompt", req.Prompt}); len(missing) > 0 {
			respondMissingFields(c, missing)
			return
		}

		id, err := svc.CreateWebsite(c.Request.Context(), middleware.CurrentUserID(c), req.URL, req.Prompt, req.Private)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.IDResponseDTO{ID: id})
	}
}

type createTextRequest struct {
	Text    string `json:"text"`
	Prompt  string `json:"prompt"`
	Private bool   `json:"private"`
}

// CreateTextSummaryHandler handles POST /summary/text.
func CreateTextSummaryHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createTextRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperrors.ErrValidation.WithMessage("invalid request body"))
			return
		}
		if missing := missingFields([2]string{"text", req.Text}, [2]string{"prompt", req.Prompt}); len(missing) > 0 {
			respondMissingFields(c, missing)
			return
		}

		id, err := svc.CreateText(c.Request.Context(), middleware.CurrentUserID(c), req.Text, req.Prompt, req.Private)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.IDResponseDTO{ID: id})
	}
}

// CreateFileSummaryHandler handles POST /summary/file (multipart).
func CreateFileSummaryHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			respondMissingFields(c, []string{"file"})
			return
		}
		prompt := c.PostForm("prompt")
		if missing := missingFields([2]string{"prompt", prompt}); len(missing) > 0 {
			respondMissingFields(c, missing)
			return
		}
		private := c.PostForm("private") == "true"

		if fileHeader.Size > maxUploadBytes {
			respondError(c, apperrors.ErrValidation.WithMessage("file too large"))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, apperrors.ErrInternal.WithCause(err))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			respondError(c, apperrors.ErrInternal.WithCause(err))
			return
		}

		id, err := svc.CreateFile(c.Request.Context(), middleware.CurrentUserID(c), fileHeader.Filename, data, prompt, private)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.IDResponseDTO{ID: id})
	}
}

// GetSummaryHandler handles GET /summary/id/:id.
func GetSummaryHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperrors.ErrValidation.WithMessage("invalid summary id"))
			return
		}

		summary, err := svc.GetByID(c.Request.Context(), middleware.CurrentUserID(c), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MapSummary(summary))
	}
}

// DeleteSummaryHandler handles DELETE /summary/id/:id.
func DeleteSummaryHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperrors.ErrValidation.WithMessage("invalid summary id"))
			return
		}

		if err := svc.Delete(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
