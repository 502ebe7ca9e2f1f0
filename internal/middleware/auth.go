package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskflow-api/internal/apperr"
	"taskflow-api/internal/response"
)

// Auth returns a middleware that validates Bearer JWTs locally and stores
// the user id in the context under "user_id".
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "Invalid token claims")
			return
		}

		userID, err := extractUserID(claims)
		if err != nil {
			abortUnauthorized(c, "User ID not found in token")
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// extractUserID reads the user id from the claim set. Both our own
// "user_id" claim and the standard "sub" claim are accepted.
func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	var idStr string
	if uid, ok := claims["user_id"].(string); ok {
		idStr = uid
	} else if sub, ok := claims["sub"].(string); ok {
		idStr = sub
	}
	return uuid.Parse(idStr)
}

func abortUnauthorized(c *gin.Context, message string) {
	response.SendError(c, http.StatusUnauthorized, apperr.CodeUnauthorized, message, nil)
	c.Abort()
}
