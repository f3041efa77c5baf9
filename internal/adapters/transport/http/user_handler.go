package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webcontacts/contacts-api/internal/adapters/transport/http/dto"
	"github.com/webcontacts/contacts-api/internal/adapters/transport/http/middleware"
	customErrors "github.com/webcontacts/contacts-api/internal/domain/errors"
	usersvc "github.com/webcontacts/contacts-api/internal/users/service"
)

const maxAvatarSize = 5 << 20 // 5 MiB

type UserHandler struct {
	svc usersvc.Service
}

func NewUserHandler(svc usersvc.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": customErrors.ErrInvalidToken.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": customErrors.ErrInvalidToken.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxAvatarSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	updated, err := h.svc.UpdateAvatar(c.Request.Context(), user, file, fileHeader.Size, contentType)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(updated))
}
