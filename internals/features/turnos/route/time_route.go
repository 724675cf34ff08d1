package route

import (
	"github.com/gofiber/fiber/v2"

	"tciv_backend/internals/features/turnos/controller"
)

func TimeRoutes(router fiber.Router) {
	ctrl := controller.NewTimeController()

	router.Get("/time", ctrl.GetServerTime)
}
