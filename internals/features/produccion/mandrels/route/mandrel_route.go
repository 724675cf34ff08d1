package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tciv_backend/internals/features/produccion/mandrels/controller"
)

func MandrelRoutes(router fiber.Router, extDB *gorm.DB) {
	ctrl := controller.NewMandrelController(extDB)

	router.Get("/mandrels/client", ctrl.GetClient)
	router.Get("/mandrels/extrusion", ctrl.GetExtrusion)
}
