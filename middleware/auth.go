package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"api/config"
	"api/database"
	"api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userContextKey     = "currentUser"
	UserCacheKeyPrefix = "user_session:"
	userCacheTTL       = 15 * time.Minute
)

// Claims carried by the API's bearer tokens
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT creates a signed token for the given user
func GenerateJWT(user models.User, lifetime time.Duration) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// AuthMiddleware validates the bearer token and loads the authenticated
// user into the request context. The user record is cached in Redis to
// avoid a database round trip on every request.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		user, err := loadUser(c, claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated user holds one of
// the given roles. Must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUserFromRequest(c)
		if err != nil {
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
	}
}

// GetUserFromRequest returns the authenticated user stored in the context.
// On failure the error response has already been written.
func GetUserFromRequest(c *gin.Context) (models.User, error) {
	value, exists := c.Get(userContextKey)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return models.User{}, jwt.ErrTokenInvalidClaims
	}
	return value.(models.User), nil
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

func loadUser(c *gin.Context, userID string) (models.User, error) {
	var user models.User

	cacheKey := UserCacheKeyPrefix + userID
	if database.REDIS != nil {
		if cached, err := database.REDIS.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			if err := json.Unmarshal([]byte(cached), &user); err == nil {
				return user, nil
			}
		}
	}

	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return models.User{}, err
	}

	if database.REDIS != nil {
		if payload, err := json.Marshal(user); err == nil {
			database.REDIS.Set(c.Request.Context(), cacheKey, payload, userCacheTTL)
		}
	}

	return user, nil
}

// InvalidateUserCache drops the cached session copy of a user after a
// profile update or deletion.
func InvalidateUserCache(c *gin.Context, userID string) {
	if database.REDIS != nil {
		database.REDIS.Del(c.Request.Context(), UserCacheKeyPrefix+userID)
	}
}
