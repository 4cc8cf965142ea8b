package middleware

import "github.com/gin-gonic/gin"

const (
	// userIDKey stores the authenticated user's ID in the request context.
	userIDKey = contextKey("userID")
	// userProfileKey stores the display details carried by the token.
	userProfileKey = contextKey("userProfile")
)

// UserProfile holds the optional identity details carried by an access token.
type UserProfile struct {
	Email string
	Name  string
}

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserProfileFromContext retrieves the token's identity details, which may be empty.
func GetUserProfileFromContext(c *gin.Context) UserProfile {
	profile, _ := c.Request.Context().Value(userProfileKey).(UserProfile)
	return profile
}
