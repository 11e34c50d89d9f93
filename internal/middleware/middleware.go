package middleware

import (
	"errors"
	"net/http"
	"net/url"

	apierrors "github.com/Dosseh91/listinghub/internal/errors"
	"github.com/Dosseh91/listinghub/internal/models"
	"github.com/Dosseh91/listinghub/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys for storing user information
const (
	ContextKeyUser     = "current_user"
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// Guard protects page routes with the route-guard semantics of the front
// door: while session state cannot be read the caller gets a 503 "loading"
// answer; without a signed-in user the request is redirected to the login
// page with the originally requested path preserved in the `from` parameter;
// a signed-in user outside the allowed roles is redirected home. Empty
// allowedRoles means any signed-in user passes.
func Guard(sessions session.Store, allowedRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessions.Load(c.Request.Context())
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				target := "/login?from=" + url.QueryEscape(c.Request.URL.Path)
				c.Redirect(http.StatusSeeOther, target)
				c.Abort()
				return
			}
			respondWithError(c, apierrors.ErrSessionUnavailableError)
			c.Abort()
			return
		}

		if len(allowedRoles) > 0 && !roleAllowed(user.Role, allowedRoles) {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}

		setUser(c, user)
		c.Next()
	}
}

// RequireSession protects API routes: it answers 401/503 JSON instead of
// redirecting. Must run before RequireRole.
func RequireSession(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessions.Load(c.Request.Context())
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				respondWithError(c, apierrors.ErrSessionRequiredError)
			} else {
				respondWithError(c, apierrors.ErrSessionUnavailableError)
			}
			c.Abort()
			return
		}

		setUser(c, user)
		c.Next()
	}
}

// RequireRole checks that the signed-in user has one of the required roles.
// This middleware must be used after RequireSession.
func RequireRole(allowedRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(ContextKeyUserRole)
		if !exists {
			respondWithError(c, apierrors.ErrForbiddenError)
			c.Abort()
			return
		}

		role := roleValue.(models.UserRole)
		if !roleAllowed(role, allowedRoles) {
			respondWithError(c, apierrors.ErrForbiddenError)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin is a convenience middleware that requires the admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// RequireAgency is a convenience middleware that requires the agency role
func RequireAgency() gin.HandlerFunc {
	return RequireRole(models.RoleAgency)
}

func roleAllowed(role models.UserRole, allowed []models.UserRole) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

func setUser(c *gin.Context, user *models.User) {
	c.Set(ContextKeyUser, user)
	c.Set(ContextKeyUserID, user.ID)
	c.Set(ContextKeyUserRole, user.Role)
}

// GetUserFromContext extracts the signed-in user from the gin context.
// Returns nil if not found.
func GetUserFromContext(c *gin.Context) *models.User {
	user, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	return user.(*models.User)
}

// GetUserIDFromContext extracts the user ID from the gin context.
// Returns empty string if not found.
func GetUserIDFromContext(c *gin.Context) string {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return ""
	}
	return userID.(string)
}

// RequestID adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// CORS configures CORS headers
func CORS(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, o := range allowedOrigins {
			if o == origin || o == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
			c.Header("Access-Control-Expose-Headers", "X-Request-ID")
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Max-Age", "43200") // 12 hours
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, err *apierrors.APIError) {
	c.JSON(err.HTTPStatus, apierrors.ErrorResponse{
		Error:     *err,
		RequestID: c.GetString("request_id"),
	})
}
