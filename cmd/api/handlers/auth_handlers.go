package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"summary-share/apperrors"
	"summary-share/cmd/api/dto"
	"summary-share/cmd/api/middleware"
	"summary-share/cmd/api/services"
	"summary-share/repositories"
)

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterHandler handles POST /auth/register.
func RegisterHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperrors.ErrValidation.WithMessage("invalid request body"))
			return
		}
		if missing := missingFields(
			[2]string{"email", req.Email},
			[2]string{"username", req.Username},
			[2]string{"password", req.Password},
		); len(missing) > 0 {
			respondMissingFields(c, missing)
			return
		}

		user, tokens, err := svc.Register(c.Request.Context(), req.Email, req.Username, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, dto.AuthResponseDTO{
			User:   dto.MapProfile(user, &repositories.ReactionIDs{}),
			Tokens: dto.TokensDTO{Access: tokens.Access, Refresh: tokens.Refresh},
		})
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler handles POST /auth/login. Either username or email
// identifies the account.
func LoginHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperrors.ErrValidation.WithMessage("invalid request body"))
			return
		}
		if missing := missingFields([2]string{"password", req.Password}); len(missing) > 0 {
			respondMissingFields(c, missing)
			return
		}
		if req.Username == "" && req.Email == "" {
			respondError(c, apperrors.ErrValidation.WithMessage("either username or email must be provided"))
			return
		}

		user, tokens, err := svc.Login(c.Request.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		profileUser, reactions, err := svc.Profile(c.Request.Context(), user.ID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.AuthResponseDTO{
			User:   dto.MapProfile(profileUser, reactions),
			Tokens: dto.TokensDTO{Access: tokens.Access, Refresh: tokens.Refresh},
		})
	}
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshHandler handles POST /auth/refresh.
func RefreshHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req refreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperrors.ErrValidation.WithMessage("invalid request body"))
			return
		}
		if missing := missingFields([2]string{"refresh", req.Refresh}); len(missing) > 0 {
			respondMissingFields(c, missing)
			return
		}

		tokens, err := svc.Refresh(c.Request.Context(), req.Refresh)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.TokensDTO{Access: tokens.Access, Refresh: tokens.Refresh})
	}
}

// MeHandler handles GET /users/me.
func MeHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, reactions, err := svc.Profile(c.Request.Context(), middleware.CurrentUserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": dto.MapProfile(user, reactions)})
	}
}

// DeleteMeHandler handles DELETE /users/me.
func DeleteMeHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteAccount(c.Request.Context(), middleware.CurrentUserID(c)); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
