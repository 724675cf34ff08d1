package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"tciv_backend/internals/features/turnos/service"
)

type TimeController struct{}

func NewTimeController() *TimeController {
	return &TimeController{}
}

// ✅ GET /api/time: hora del servidor + turno vigente.
// El cliente la consulta cada 60s; el turno se decide siempre con el
// reloj del servidor, nunca con el del navegador.
func (ctrl *TimeController) GetServerTime(c *fiber.Ctx) error {
	now := time.Now()
	return c.JSON(fiber.Map{
		"time":    now.UTC().Format(time.RFC3339),
		"hours":   now.Hour(),
		"minutes": now.Minute(),
		"shift":   service.ResolveShift(now.Hour(), now.Minute()),
	})
}
