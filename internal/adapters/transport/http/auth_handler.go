package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webcontacts/contacts-api/internal/adapters/transport/http/dto"
	"github.com/webcontacts/contacts-api/internal/adapters/transport/http/middleware"
	authsvc "github.com/webcontacts/contacts-api/internal/auth/service"
	customErrors "github.com/webcontacts/contacts-api/internal/domain/errors"
)

type AuthHandler struct {
	svc authsvc.Service
}

func NewAuthHandler(svc authsvc.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var body dto.SignupDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.svc.Signup(c.Request.Context(), body)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body dto.LoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.svc.Login(c.Request.Context(), body)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTokenResponse(pair))
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": customErrors.ErrInvalidToken.Error()})
		return
	}

	pair, err := h.svc.Refresh(c.Request.Context(), token)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTokenResponse(pair))
}

func (h *AuthHandler) ConfirmedEmail(c *gin.Context) {
	msg, err := h.svc.ConfirmEmail(c.Request.Context(), c.Param("token"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msg})
}

// handleError maps domain sentinels onto HTTP statuses. Messages are the
// fixed sentinel texts; internals are never leaked.
func handleError(c *gin.Context, err error) {
	switch {
	case customErrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case customErrors.IsUnauthorized(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case customErrors.IsVerification(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case customErrors.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case customErrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case customErrors.IsRateLimited(err):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
