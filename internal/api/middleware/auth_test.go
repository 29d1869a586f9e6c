package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"biodata-api/internal/models"
	"biodata-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	claims *services.Claims
	err    error
	seen   string
}

func (s *stubVerifier) Verify(ctx context.Context, token string) (*services.Claims, error) {
	s.seen = token
	return s.claims, s.err
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer   abc "))
	assert.Equal(t, "abc", bearerToken("abc"))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken(""))
}

func TestAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(v TokenVerifier) *gin.Engine {
		r := gin.New()
		r.Use(Authorize(v))
		ok := func(c *gin.Context) {
			claims, err := GetClaimsFromContext(c)
			if err != nil {
				c.Status(http.StatusNoContent)
				return
			}
			c.JSON(http.StatusOK, gin.H{"user": claims.UserID})
		}
		r.GET("/api/biodata", ok)
		r.GET("/api/policy", ok)
		r.GET("/api/unlisted", ok)
		return r
	}

	serve := func(r *gin.Engine, path, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("public route skips verification", func(t *testing.T) {
		v := &stubVerifier{err: services.ErrMissingToken}
		w := serve(newRouter(v), "/api/policy", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("claims reach the handler", func(t *testing.T) {
		v := &stubVerifier{claims: &services.Claims{UserID: 7, Role: models.RoleUser}}
		w := serve(newRouter(v), "/api/biodata", "Bearer tok")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tok", v.seen)
		assert.JSONEq(t, `{"user":7}`, w.Body.String())
	})

	t.Run("unlisted route requires admin", func(t *testing.T) {
		v := &stubVerifier{claims: &services.Claims{UserID: 7, Role: models.RoleUser}}
		w := serve(newRouter(v), "/api/unlisted", "Bearer tok")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("verifier failure is a 500", func(t *testing.T) {
		v := &stubVerifier{err: errors.New("redis down")}
		w := serve(newRouter(v), "/api/biodata", "Bearer tok")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("unknown path falls through to 404", func(t *testing.T) {
		v := &stubVerifier{err: services.ErrMissingToken}
		w := serve(newRouter(v), "/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCorrelationID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CorrelationID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetCorrelationID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Correlation-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get("X-Correlation-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Body.String(), 36)
}
