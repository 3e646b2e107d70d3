// file: internals/helpers/json_response.go
package helper

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error helpers (flat portal shape)
=================================*/

// JsonError writes the portal's flat error body: {"error": message}.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// JsonErrorWithData writes an error body carrying recovery data, e.g. the
// existing referenceId on a duplicate-phone conflict.
func JsonErrorWithData(c *fiber.Ctx, status int, message string, extra fiber.Map) error {
	body := fiber.Map{"error": message}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// JsonInternalError logs the underlying cause server-side and returns a
// generic 500; internals never leak to the caller.
func JsonInternalError(c *fiber.Ctx, message string, err error) error {
	log.Printf("[ERROR] %s: %v", message, err)
	return JsonError(c, fiber.StatusInternalServerError, message)
}

/* ===============================
   Success helpers
=================================*/

// JsonSuccess writes {"success": true, "message": ..., ...extra}.
func JsonSuccess(c *fiber.Ctx, message string, extra fiber.Map) error {
	body := fiber.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

/* ===============================
   Validator mapping
=================================*/

// ValidationError maps validator.v10 failures onto the portal's error
// shape, surfacing the first offending field.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	fe := ve[0]
	msg := "Invalid value for field: " + fe.Field()
	if fe.Tag() == "required" {
		msg = "Missing required field: " + fe.Field()
	}
	return JsonError(c, fiber.StatusBadRequest, msg)
}
