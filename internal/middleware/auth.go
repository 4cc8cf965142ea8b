package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims accepted in access tokens. The subject is the user ID.
type TokenClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// AccessTokenQueryParam carries the bearer token on routes built with
// AllowQueryToken.
const AccessTokenQueryParam = "access_token"

type authOptions struct {
	queryToken bool
}

// AuthOption tunes AuthMiddleware.
type AuthOption func(*authOptions)

// AllowQueryToken accepts the token from AccessTokenQueryParam when the
// Authorization header is absent. Meant for EventSource clients, which
// cannot set headers.
func AllowQueryToken() AuthOption {
	return func(o *authOptions) {
		o.queryToken = true
	}
}

// AuthMiddleware creates a Gin middleware handler that validates HS256 JWTs
// issued by the identity provider. An empty issuer disables the issuer check.
// Only the Authorization header is read unless AllowQueryToken is given.
func AuthMiddleware(jwtSecret, issuer string, options ...AuthOption) gin.HandlerFunc {
	var settings authOptions
	for _, apply := range options {
		apply(&settings)
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, ok := bearerToken(c, settings.queryToken)
		if !ok {
			logger.Warn("Authorization header missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims := &TokenClaims{}
		token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			logger.Warn("Invalid token", slog.Any("error", err))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		userID := claims.Subject
		if userID == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		enrichedLogger := logger.With(slog.String("user_id", userID))

		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userProfileKey, UserProfile{Email: claims.Email, Name: claims.Name})
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func bearerToken(c *gin.Context, queryToken bool) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if !queryToken {
			return "", false
		}
		token := c.Query(AccessTokenQueryParam)
		return token, token != ""
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
