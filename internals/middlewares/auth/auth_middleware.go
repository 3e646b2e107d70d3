// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"lagos_eoi_backend/internals/configs"
)

// AdminAuthMiddleware guards the back-office routes: bearer (or cookie)
// JWT signed with JWT_SECRET, unexpired, carrying the admin role.
func AdminAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Missing JWT Secret"})
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized - Token parse error"})
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized - Token expired"})
		}

		role, _ := claims["role"].(string)
		if !strings.EqualFold(role, "admin") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden - admin only"})
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Locals("user_id", sub)
		}
		if email, ok := claims["email"].(string); ok {
			c.Locals("user_email", email)
		}
		c.Locals("role", role)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token != "" {
			return token, nil
		}
	}
	if cookie := c.Cookies("admin_token"); cookie != "" {
		return cookie, nil
	}
	return "", errors.New("Unauthorized - Missing token")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	exp, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	if time.Now().After(time.Unix(int64(exp), 0).Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}
