package route

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"tciv_backend/internals/features/produccion/compliance/controller"
)

func ComplianceRoutes(router fiber.Router, db *gorm.DB, mongoDB *mongo.Database) {
	ctrl := controller.NewComplianceController(db, mongoDB)

	router.Get("/compliance", ctrl.GetCompliance)
}
