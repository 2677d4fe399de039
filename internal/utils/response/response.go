package response

import (
	stderrors "errors"

	apperrors "cypher/internal/errors"
	"cypher/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

func ServiceUnavailable(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusServiceUnavailable, message)
}

func Unauthorized(c *fiber.Ctx) error {
	return Error(c, fiber.StatusUnauthorized, "Unauthorized")
}

// ValidationError writes a 400 listing every broken field rule in err.
// Coded domain errors keep their code.
func ValidationError(c *fiber.Ctx, err error) error {
	body := fiber.Map{"error": "invalid request"}

	var fields validation.Errors
	if stderrors.As(err, &fields) {
		body["fields"] = fields
	}
	var domain *apperrors.DomainError
	if stderrors.As(err, &domain) {
		body["error"] = domain.Message
		body["code"] = domain.Code
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}
