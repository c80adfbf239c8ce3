package middleware

import (
	"net/http"
	"strings"

	"github.com/incident-report/api-go/config"
	"github.com/incident-report/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// AuthCookieName is the cookie carrying the signed claims principal.
const AuthCookieName = "auth_token"

// AuthMiddleware reads the claims cookie (or an Authorization bearer token)
// and places the decoded identity in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AuthCookieName)
		if err != nil || token == "" {
			token = bearerToken(c)
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"Message": "Authentication required."})
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		parsedToken, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
			return config.JWTSecret(), nil
		})

		if err != nil || !parsedToken.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"Message": "Invalid or expired session."})
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"Message": "Invalid session claims."})
			c.Abort()
			return
		}

		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)
		fullName, _ := claims["full_name"].(string)

		userClaims := &utils.UserClaims{
			UserID:   uint(userID),
			Email:    email,
			Role:     role,
			FullName: fullName,
		}

		c.Set(string(utils.UserContextKey), userClaims)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
