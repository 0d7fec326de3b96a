package middleware

import (
	"log/slog"
	"strings"

	"hive/internal/delivery/api/response"
	deliverycontext "hive/internal/delivery/context"
	"hive/internal/domain/entity"
	"hive/internal/domain/service"
	"hive/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"

	// accessTokenQueryParam lets browsers authenticate websocket upgrades,
	// which cannot carry an Authorization header.
	accessTokenQueryParam = "access_token"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := BearerToken(c)
		if !ok {
			tokenString = c.QueryParam(accessTokenQueryParam)
		}
		if tokenString == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		claims, err := m.tokenSvc.ParseToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if claims.Type != service.TokenTypeAccess {
			return response.Unauthorized(c, "INVALID_TOKEN", "Access token required")
		}
		if claims.UserID == uuid.Nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "User ID missing from token")
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))

		req := c.Request()
		c.SetRequest(req.WithContext(deliverycontext.Annotate(req.Context(), slog.String("user_id", claims.UserID.String()))))

		return next(c)
	}
}

// RequireRole checks the roles set by Authenticate. It must be used after it.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !GetRoles(c).Has(requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// BearerToken extracts the token of an "Authorization: Bearer" header.
func BearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return "", false
	}

	return strings.TrimSpace(token), true
}

// GetUserID returns the authenticated user ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetRoles returns the roles of the authenticated user.
func GetRoles(c echo.Context) entity.Roles {
	roles, _ := c.Get(contextKeyRoles).(entity.Roles)

	return roles
}

// GetActor returns the authenticated caller as a collection actor.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return usecase.Actor{}, false
	}

	return usecase.Actor{UserID: userID, Roles: GetRoles(c)}, true
}
