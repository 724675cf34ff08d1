package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tciv_backend/internals/constants"
	"tciv_backend/internals/features/produccion/captures/controller"
	authMw "tciv_backend/internals/middlewares/auth"
)

func CaptureRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCaptureController(db)

	// capturar requiere permiso de captura; los reportes, de auditoría
	router.Post("/captures",
		authMw.RequirePermission(constants.PermCapture, constants.PermErrorCapture("captura de piezas")),
		ctrl.Create)

	router.Get("/captures/report",
		authMw.RequirePermission(constants.PermAudit, constants.PermErrorAudit("reporte de capturas")),
		ctrl.Report)

	router.Get("/captures/defect-summary",
		authMw.RequirePermission(constants.PermAudit, constants.PermErrorAudit("resumen de defectos")),
		ctrl.DefectSummary)

	router.Get("/captures/scrap",
		authMw.RequirePermission(constants.PermAudit, constants.PermErrorAudit("scrap por mandril")),
		ctrl.Scrap)
}
