package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tciv_backend/internals/features/produccion/captures/dto"
	"tciv_backend/internals/features/produccion/captures/service"
)

type CaptureController struct {
	Service *service.CaptureService
}

func NewCaptureController(db *gorm.DB) *CaptureController {
	return &CaptureController{Service: service.NewCaptureService(db)}
}

// ✅ POST /api/captures: registrar un evento de inspección
func (ctrl *CaptureController) Create(c *fiber.Ctx) error {
	var req dto.CreateCaptureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	captureID, err := ctrl.Service.Record(c.UserContext(), &req)
	if errors.Is(err, service.ErrValidation) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}
	if err != nil {
		log.Println("[ERROR] Error saving capture:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(dto.CreateCaptureResponse{Success: true, CaptureID: captureID})
}

// ✅ GET /api/captures/report?start=&end=
func (ctrl *CaptureController) Report(c *fiber.Ctx) error {
	rows, err := ctrl.Service.Report(c.UserContext(), c.Query("start"), c.Query("end"))
	if errors.Is(err, service.ErrValidation) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing start or end date"})
	}
	if err != nil {
		log.Println("[ERROR] Error fetching report:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(rows)
}

// ✅ GET /api/captures/defect-summary?start=&end=[&grouped=1]
// Dos formas soportadas: plana (default, por línea de defecto en orden
// de inserción) y agrupada (?grouped=1, suma descendente).
func (ctrl *CaptureController) DefectSummary(c *fiber.Ctx) error {
	start, end := c.Query("start"), c.Query("end")

	if c.QueryBool("grouped") {
		rows, err := ctrl.Service.DefectSummaryGrouped(c.UserContext(), start, end)
		if errors.Is(err, service.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing start or end date"})
		}
		if err != nil {
			log.Println("[ERROR] Error fetching defect summary:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
		}
		return c.JSON(rows)
	}

	rows, err := ctrl.Service.DefectSummary(c.UserContext(), start, end)
	if errors.Is(err, service.ErrValidation) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing start or end date"})
	}
	if err != nil {
		log.Println("[ERROR] Error fetching defect summary:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(rows)
}

// ✅ GET /api/captures/scrap?station=&start=&end=
func (ctrl *CaptureController) Scrap(c *fiber.Ctx) error {
	resp, err := ctrl.Service.Scrap(c.UserContext(), c.Query("station"), c.Query("start"), c.Query("end"))
	if errors.Is(err, service.ErrValidation) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing parameters"})
	}
	if err != nil {
		log.Println("[ERROR] Error in scrap query:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(resp)
}
