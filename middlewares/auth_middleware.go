package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Kombo16/food-health-app/config"
	"github.com/Kombo16/food-health-app/models"
)

// AuthMiddleware rejects requests without a valid bearer token and sets
// userID and email on the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := userFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Set("userID", user.ID)
		c.Set("email", user.Email)
		c.Next()
	}
}

// OptionalAuth sets userID/email when a valid bearer token is present and
// passes the request through untouched otherwise. Used on endpoints that
// serve both anonymous and signed-in callers.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := userFromRequest(c); err == nil {
			c.Set("userID", user.ID)
			c.Set("email", user.Email)
		}
		c.Next()
	}
}

func userFromRequest(c *gin.Context) (*models.User, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errors.New("authorization header required")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		return nil, errors.New("server misconfigured: JWT_SECRET not set")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, errors.New("email claim missing")
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
