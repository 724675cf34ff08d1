package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tciv_backend/internals/constants"
	"tciv_backend/internals/features/produccion/defects/controller"
	authMw "tciv_backend/internals/middlewares/auth"
)

func DefectRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDefectController(db)

	// leer el catálogo solo pide sesión; mutarlo pide admin
	router.Get("/defects", ctrl.GetAll)

	adminGuard := authMw.RequirePermission(constants.PermAdmin, constants.PermErrorAdmin("el catálogo de defectos"))
	router.Post("/defects", adminGuard, ctrl.Create)
	router.Put("/defects/:id", adminGuard, ctrl.Update)
	router.Delete("/defects/:id", adminGuard, ctrl.Delete)
}
