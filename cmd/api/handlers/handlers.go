// Package handlers contains the gin HTTP handlers. Handlers validate
// input, call services and translate taxonomy errors into responses; no
// business logic lives here.
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"summary-share/apperrors"
	"summary-share/cmd/api/dto"
	"summary-share/internal/logger"
)

// respondError translates an application error at the HTTP boundary. This
// is the only place pipeline errors are caught.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= 500 {
		var appErr *apperrors.Error
		fields := logger.Fields{"path": c.Request.URL.Path}
		if errors.As(err, &appErr) && appErr.Details != "" {
			fields["error"] = appErr.Details
		} else {
			fields["error"] = err.Error()
		}
		logger.ErrorWithFields("request failed", fields)
	}
	c.JSON(status, dto.ErrorResponseDTO{Message: apperrors.UserMessage(err)})
}

// missingFields returns the names whose values are empty, preserving order.
func missingFields(pairs ...[2]string) []string {
	var missing []string
	for _, pair := range pairs {
		if strings.TrimSpace(pair[1]) == "" {
			missing = append(missing, pair[0])
		}
	}
	return missing
}

func respondMissingFields(c *gin.Context, missing []string) {
	respondError(c, apperrors.ErrValidation.WithMessage(
		"Missing fields: %s", strings.Join(missing, ", ")))
}
