package middleware

import (
	"net/http"
	"os"
	"strings"

	"construtora_xpto/pkg"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
)

// SessionKey is the gin context key the authenticated session is stored under.
const SessionKey = "session"

// SessionClaims are the JWT claims carried by a bearer token.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role,omitempty"`
	jwtlib.RegisteredClaims
}

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// RequireSession guards mutating routes with an HS256 bearer token.
//
// The middleware is disabled (pass-through) when JWT_SECRET is unset, so
// local environments work without issuing tokens.
func RequireSession() gin.HandlerFunc {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return func(c *gin.Context) { c.Next() }
	}

	key := []byte(secret)
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := parseSession(tokenStr, key)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(SessionKey, claims)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func parseSession(tokenStr string, key []byte) (*SessionClaims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwtlib.Token) (any, error) {
		return key, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, jwtlib.ErrTokenInvalidClaims
	}
	return claims, nil
}
