package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	capturesService "tciv_backend/internals/features/produccion/captures/service"
	"tciv_backend/internals/features/produccion/compliance/service"
	"tciv_backend/internals/features/produccion/stations/repository"
)

type ComplianceController struct {
	Service *service.ComplianceService
}

func NewComplianceController(db *gorm.DB, mongoDB *mongo.Database) *ComplianceController {
	return &ComplianceController{
		Service: service.NewComplianceService(
			repository.NewStationRepository(mongoDB),
			capturesService.NewCaptureService(db),
		),
	}
}

// ✅ GET /api/compliance?shift=A|B[&plant=5210]
// Lectura pura: el tablero la consulta en un intervalo fijo (~10s).
func (ctrl *ComplianceController) GetCompliance(c *fiber.Ctx) error {
	shift := c.Query("shift")
	if shift != "A" && shift != "B" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing or invalid shift"})
	}
	plant := c.Query("plant", "5210")

	rows, err := ctrl.Service.Aggregate(c.UserContext(), shift, plant)
	if err != nil {
		log.Println("[ERROR] Error fetching production compliance:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching production statistics"})
	}
	return c.JSON(rows)
}
