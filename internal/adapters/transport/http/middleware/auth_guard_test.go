package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/webcontacts/contacts-api/internal/adapters/transport/http/dto"
	customErrors "github.com/webcontacts/contacts-api/internal/domain/errors"
	"github.com/webcontacts/contacts-api/internal/domain/model"
)

type guardSvcStub struct {
	user model.User
	err  error
}

func (s guardSvcStub) Signup(context.Context, dto.SignupDTO) (model.User, error) {
	return model.User{}, nil
}
func (s guardSvcStub) Login(context.Context, dto.LoginDTO) (model.TokenPair, error) {
	return model.TokenPair{}, nil
}
func (s guardSvcStub) Refresh(context.Context, string) (model.TokenPair, error) {
	return model.TokenPair{}, nil
}
func (s guardSvcStub) ConfirmEmail(context.Context, string) (string, error) { return "", nil }
func (s guardSvcStub) CurrentUser(context.Context, string) (model.User, error) {
	return s.user, s.err
}

func guardedRouter(svc guardSvcStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", NewAuthGuard(svc), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.String(500, "no user in context")
			return
		}
		c.String(200, user.Email)
	})
	return r
}

func get(r *gin.Engine, auth string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthGuard_ResolvesUser(t *testing.T) {
	user := model.User{ID: uuid.New(), Email: "a@x.com"}
	r := guardedRouter(guardSvcStub{user: user})

	w := get(r, "Bearer sometoken")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if w.Body.String() != "a@x.com" {
		t.Fatalf("handler saw %q", w.Body.String())
	}
}

func TestAuthGuard_MissingOrMalformedHeader(t *testing.T) {
	r := guardedRouter(guardSvcStub{})

	for _, auth := range []string{"", "Basic abc", "Bearer", "Bearer "} {
		if w := get(r, auth); w.Code != http.StatusUnauthorized {
			t.Fatalf("auth=%q: want 401, got %d", auth, w.Code)
		}
	}
}

func TestAuthGuard_InvalidToken(t *testing.T) {
	r := guardedRouter(guardSvcStub{err: customErrors.ErrInvalidToken})

	if w := get(r, "Bearer garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", w.Code)
	}
}

func TestBearerToken_CaseInsensitiveScheme(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Authorization", "bearer tok123")

	token, ok := BearerToken(c)
	if !ok || token != "tok123" {
		t.Fatalf("got %q ok=%v", token, ok)
	}
}
