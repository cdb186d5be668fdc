package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"cidgate/internal/domain"
	"cidgate/internal/middleware"
	"cidgate/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authRouter(verifier *mocks.MockIdentityVerifier) *gin.Engine {
	r := gin.New()
	r.Use(middleware.AuthMiddleware(verifier, zap.NewNop()))
	r.GET("/test", func(c *gin.Context) {
		identity, err := middleware.GetIdentity(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"uid": identity.UID, "email": identity.Email})
	})
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	verifier := new(mocks.MockIdentityVerifier)
	verifier.On("VerifyToken", mock.Anything, "valid-token").
		Return(&domain.Identity{UID: "u1", Email: "user@test.com"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer valid-token")
	authRouter(verifier).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "u1", resp["uid"])
	assert.Equal(t, "user@test.com", resp["email"])
	verifier.AssertExpectations(t)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	verifier := new(mocks.MockIdentityVerifier)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	authRouter(verifier).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", decode(t, w)["error"])
	verifier.AssertNotCalled(t, "VerifyToken", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Basic some-token", "Bearer", "Bearer   ", "token-without-scheme"} {
		t.Run(header, func(t *testing.T) {
			verifier := new(mocks.MockIdentityVerifier)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
			req.Header.Set("Authorization", header)
			authRouter(verifier).ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			verifier.AssertNotCalled(t, "VerifyToken", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	verifier := new(mocks.MockIdentityVerifier)
	verifier.On("VerifyToken", mock.Anything, "expired-token").Return(nil, domain.ErrInvalidToken)
	verifier.On("Provider").Return("firebase")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer expired-token")
	authRouter(verifier).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid Token", decode(t, w)["error"])
	verifier.AssertExpectations(t)
}

func TestGetIdentity_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, err := middleware.GetIdentity(c)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
