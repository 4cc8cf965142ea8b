package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/trip_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims middleware.TokenClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func validClaims(subject string) middleware.TokenClaims {
	return middleware.TokenClaims{
		Email: "ana@example.com",
		Name:  "Ana",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "identity",
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func newAuthRouter(issuer string, options ...middleware.AuthOption) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(testSecret, issuer, options...))
	r.GET("/me", func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		profile := middleware.GetUserProfileFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID, "email": profile.Email, "name": profile.Name})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	expired := validClaims("user-a")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	noSubject := validClaims("")
	otherIssuer := validClaims("user-a")
	otherIssuer.Issuer = "someone-else"

	testCases := []struct {
		name       string
		issuer     string
		options    []middleware.AuthOption
		header     string
		query      string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid bearer token",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("user-a")),
			wantStatus: http.StatusOK,
			wantBody:   `{"userID":"user-a","email":"ana@example.com","name":"Ana"}`,
		},
		{
			name:       "token in query string when allowed",
			options:    []middleware.AuthOption{middleware.AllowQueryToken()},
			query:      signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("user-b")),
			wantStatus: http.StatusOK,
			wantBody:   `{"userID":"user-b","email":"ana@example.com","name":"Ana"}`,
		},
		{
			name:       "token in query string by default",
			query:      signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("user-b")),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Authorization header format must be Bearer {token}"}`,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Authorization header format must be Bearer {token}"}`,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Authorization header format must be Bearer {token}"}`,
		},
		{
			name:       "wrong secret",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), validClaims("user-a")),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid token"}`,
		},
		{
			name:       "wrong algorithm",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims("user-a")),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid token"}`,
		},
		{
			name:       "expired",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Token has expired"}`,
		},
		{
			name:       "no subject",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noSubject),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid token claims"}`,
		},
		{
			name:       "issuer mismatch",
			issuer:     "identity",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), otherIssuer),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid token"}`,
		},
		{
			name:       "issuer match",
			issuer:     "identity",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("user-a")),
			wantStatus: http.StatusOK,
			wantBody:   `{"userID":"user-a","email":"ana@example.com","name":"Ana"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			url := "/me"
			if tc.query != "" {
				url += "?" + middleware.AccessTokenQueryParam + "=" + tc.query
			}
			req := httptest.NewRequest(http.MethodGet, url, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			newAuthRouter(tc.issuer, tc.options...).ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.JSONEq(t, tc.wantBody, w.Body.String())
		})
	}
}
