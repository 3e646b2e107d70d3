package controller

import (
	"errors"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lagos_eoi_backend/internals/configs"
	"lagos_eoi_backend/internals/features/users/dto"
	authHelper "lagos_eoi_backend/internals/features/users/helper"
	"lagos_eoi_backend/internals/features/users/model"
	"lagos_eoi_backend/internals/features/users/service"
	helper "lagos_eoi_backend/internals/helpers"
)

var validateAuth = helper.NewValidator()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =======================
// 🔐 Credential login
// =======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonInternalError(c, "Login failed", err)
	}

	if err := authHelper.CheckPasswordHash(user.UserPassword, body.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return ctrl.issueSession(c, user)
}

// =======================
// 🔐 Google ID-token login (provisioned admins only)
// =======================
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if configs.GoogleClientID == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Google sign-in is not configured")
	}

	verifier := googleAuthIDTokenVerifier.Verifier{}
	if err := verifier.VerifyIDToken(body.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	claims, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil || claims.Email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	// only already-provisioned admins may sign in with Google
	var user model.UserModel
	if err := ctrl.DB.Where("user_email = ?", claims.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "No admin account for this Google user")
		}
		return helper.JsonInternalError(c, "Login failed", err)
	}

	return ctrl.issueSession(c, user)
}

// =======================
// 👤 Current session
// =======================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	email, _ := c.Locals("user_email").(string)
	if email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		return helper.JsonInternalError(c, "Failed to load session", err)
	}
	return c.JSON(user)
}

func (ctrl *AuthController) issueSession(c *fiber.Ctx, user model.UserModel) error {
	token, err := service.SignAdminToken(user)
	if err != nil {
		return helper.JsonInternalError(c, "Login failed", err)
	}
	return helper.JsonSuccess(c, "Login successful", fiber.Map{
		"token": token,
		"user":  user,
	})
}
