package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tciv_backend/internals/features/users/auth/controller"
)

func AuthRoutes(router fiber.Router, extDB *gorm.DB) {
	ctrl := controller.NewAuthController(extDB)

	router.Post("/login", ctrl.Login)
}
