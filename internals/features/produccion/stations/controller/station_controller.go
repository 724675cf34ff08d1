package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"tciv_backend/internals/features/produccion/stations/repository"
)

type StationController struct {
	Repo *repository.StationRepository
}

func NewStationController(db *mongo.Database) *StationController {
	return &StationController{Repo: repository.NewStationRepository(db)}
}

// ✅ GET /api/stations?category=autoclave&plant=5210
func (ctrl *StationController) GetAll(c *fiber.Ctx) error {
	category := c.Query("category", "autoclave")
	plant := c.Query("plant", "5210")

	stations, err := ctrl.Repo.ListStations(c.UserContext(), plant, category)
	if err != nil {
		log.Println("[ERROR] Failed to fetch stations:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching stations"})
	}
	return c.JSON(stations)
}

// ✅ GET /api/stations/:id
func (ctrl *StationController) GetByID(c *fiber.Ctx) error {
	station, err := ctrl.Repo.GetStationByID(c.UserContext(), c.Params("id"))
	if errors.Is(err, repository.ErrStationNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Station not found"})
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch station:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(station)
}

// ✅ GET /api/mandrels?stationName= : mandriles montados según la
// configuración vigente de la estación
func (ctrl *StationController) GetMandrels(c *fiber.Ctx) error {
	stationName := c.Query("stationName")
	if stationName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Station name is required"})
	}

	current, err := ctrl.Repo.GetCurrentByStation(c.UserContext(), stationName)
	if errors.Is(err, repository.ErrStationNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No mandrels found for this station"})
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch mandrels:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching mandrels"})
	}
	return c.JSON(current.MandrelConfig)
}
