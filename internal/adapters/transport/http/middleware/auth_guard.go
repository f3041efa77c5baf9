package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authsvc "github.com/webcontacts/contacts-api/internal/auth/service"
	customErrors "github.com/webcontacts/contacts-api/internal/domain/errors"
	"github.com/webcontacts/contacts-api/internal/domain/model"
)

const currentUserKey = "currentUser"

// BearerToken extracts the credentials part of an Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

// NewAuthGuard resolves the current user from the access token before any
// protected handler runs. No mutation happens here.
func NewAuthGuard(svc authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": customErrors.ErrInvalidToken.Error()})
			return
		}

		user, err := svc.CurrentUser(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": customErrors.ErrInvalidToken.Error()})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by NewAuthGuard.
func CurrentUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}
