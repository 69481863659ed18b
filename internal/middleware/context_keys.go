package middleware

import "github.com/gin-gonic/gin"

// subjectKey stores the authenticated client (the token subject).
const subjectKey = contextKey("subject")

// GetSubjectFromContext retrieves the authenticated client ID from the Gin context.
// It returns the subject and a boolean indicating if it was found.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(subjectKey)); exists {
		subject, ok := v.(string)
		return subject, ok
	}
	// check in the request context as well
	if v, ok := c.Request.Context().Value(subjectKey).(string); ok {
		return v, true
	}
	return "", false
}
