package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/ridewise/backend/internal/models"
)

// JWTAuthMiddleware checks for a valid locally issued JWT and stores the
// viewer in the context. Used when AUTH_MODE=local instead of Firebase.
// With required=false a missing or invalid token leaves the viewer anonymous.
func JWTAuthMiddleware(jwtSecret string, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := bearerToken(c)
			if err != nil {
				if required {
					return err
				}
				return next(c)
			}

			claims := &models.JwtCustomClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
				}
				return []byte(jwtSecret), nil
			})

			if err != nil || !token.Valid {
				if required {
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
				}
				return next(c)
			}

			SetViewer(c, models.Viewer{Name: claims.Name, Email: claims.Email})
			return next(c)
		}
	}
}
