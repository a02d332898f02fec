package middleware

import (
	"log/slog"
	"strings"

	"lawyerup/internal/delivery/api/response"
	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/domain/entity"
	"lawyerup/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccessTokenQueryParam carries the token for clients that cannot set headers (websocket).
const AccessTokenQueryParam = "access_token"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService}
}

// Authenticate validates the access token and stores the principal on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing or malformed")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		role, ok := entity.RoleFromClaims(claims.Roles)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token carries no known role")
		}

		userID := claims.UserID()
		deliverycontext.SetAuth(c, userID, role)

		// Enrich the request-scoped logger so usecase logs carry the caller.
		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", userID)))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireRole checks the authenticated user's role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if deliverycontext.GetRole(c) != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		token = strings.TrimSpace(token)

		return token, found && token != ""
	}

	token := c.QueryParam(AccessTokenQueryParam)

	return token, token != ""
}
