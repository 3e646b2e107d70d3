package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"lagos_eoi_backend/internals/configs"
	"lagos_eoi_backend/internals/features/users/model"
)

const accessTTL = 24 * time.Hour

// SignAdminToken issues the HS256 session token carried by the back office.
func SignAdminToken(user model.UserModel) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.UserID.String(),
		"email": user.UserEmail,
		"role":  user.UserRole,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
