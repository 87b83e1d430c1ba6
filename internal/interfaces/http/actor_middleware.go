package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/CampoStock-api/internal/application/dto"
)

const actorIDKey = "actorID"

// ActorMiddleware extrae la identidad del actor del header X-Actor-ID.
// La autenticación vive en la aplicación que nos rodea; aquí solo exigimos que
// el gateway ya haya resuelto quién llama.
func ActorMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actorID := c.Get("X-Actor-ID")
		if actorID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "MISSING_ACTOR", Message: "header X-Actor-ID requerido",
			})
		}
		c.Locals(actorIDKey, actorID)
		return c.Next()
	}
}

// GetActorID devuelve el actor resuelto por el middleware ("" si no hay).
func GetActorID(c *fiber.Ctx) string {
	if v, ok := c.Locals(actorIDKey).(string); ok {
		return v
	}
	return ""
}
