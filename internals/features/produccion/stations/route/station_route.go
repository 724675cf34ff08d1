package route

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"tciv_backend/internals/features/produccion/stations/controller"
)

func StationRoutes(router fiber.Router, mongoDB *mongo.Database) {
	ctrl := controller.NewStationController(mongoDB)

	router.Get("/stations", ctrl.GetAll)
	router.Get("/stations/:id", ctrl.GetByID)
	router.Get("/mandrels", ctrl.GetMandrels)
}
