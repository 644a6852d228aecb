package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/ridewise/backend/internal/models"
)

// FirebaseAuthMiddleware creates an Echo middleware that verifies Firebase ID
// tokens and stores the resolved viewer in the context. With required=false a
// missing or invalid token leaves the viewer anonymous instead of failing, so
// public reads can still know who is looking.
func FirebaseAuthMiddleware(authClient *auth.Client, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			idToken, err := bearerToken(c)
			if err != nil {
				if required {
					return err
				}
				return next(c)
			}

			token, err := authClient.VerifyIDToken(context.Background(), idToken)
			if err != nil {
				if required {
					return echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("Invalid or expired ID token: %v", err))
				}
				return next(c)
			}

			SetViewer(c, viewerFromToken(token))
			return next(c)
		}
	}
}

func viewerFromToken(token *auth.Token) models.Viewer {
	viewer := models.Viewer{}
	if name, ok := token.Claims["name"].(string); ok {
		viewer.Name = name
	}
	if email, ok := token.Claims["email"].(string); ok {
		viewer.Email = email
	}
	return viewer
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is missing")
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Authorization header must be in Bearer format")
	}

	return tokenParts[1], nil
}
