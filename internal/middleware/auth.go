package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cidgate/internal/domain"
	"cidgate/internal/port"
)

const (
	ContextKeyUserID   = "user_id"
	ContextKeyEmail    = "email"
	ContextKeyIdentity = "identity"
)

// AuthMiddleware returns Gin middleware that verifies the bearer token with
// verifier and injects the resolved identity. Requests without a token are
// rejected before the verifier is called.
func AuthMiddleware(verifier port.IdentityVerifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		identity, err := verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			logger.Debug("auth: token rejected",
				zap.String("provider", verifier.Provider()), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Token"})
			return
		}

		c.Set(ContextKeyUserID, identity.UID)
		c.Set(ContextKeyEmail, identity.Email)
		c.Set(ContextKeyIdentity, *identity)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// GetIdentity extracts the verified identity from the Gin context.
func GetIdentity(c *gin.Context) (domain.Identity, error) {
	val, exists := c.Get(ContextKeyIdentity)
	if !exists {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	identity, ok := val.(domain.Identity)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return identity, nil
}
