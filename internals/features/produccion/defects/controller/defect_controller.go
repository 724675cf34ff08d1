package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tciv_backend/internals/features/produccion/defects/dto"
	"tciv_backend/internals/features/produccion/defects/model"
	helper "tciv_backend/internals/helpers"
)

type DefectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDefectController(db *gorm.DB) *DefectController {
	return &DefectController{DB: db, Validator: validator.New()}
}

// ✅ GET /api/defects: catálogo completo
func (ctrl *DefectController) GetAll(c *fiber.Ctx) error {
	var items []model.DefectModel
	if err := ctrl.DB.WithContext(c.UserContext()).Order("defect_code").Find(&items).Error; err != nil {
		log.Println("[ERROR] Failed to fetch defects:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Error fetching defects")
	}
	return c.JSON(items)
}

// ✅ POST /api/defects
func (ctrl *DefectController) Create(c *fiber.Ctx) error {
	var req dto.DefectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Faltan campos requeridos")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	item := model.DefectModel{DefectCode: req.DefectCode, Description: req.Description}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&item).Error; err != nil {
		log.Println("[ERROR] Failed to create defect:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Error al crear el defecto")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

// ✅ PUT /api/defects/:id
func (ctrl *DefectController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.DefectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Faltan campos requeridos")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var item model.DefectModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Defecto no encontrado")
		}
		log.Println("[ERROR] Failed to fetch defect:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Error al actualizar el defecto")
	}

	item.DefectCode = req.DefectCode
	item.Description = req.Description
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&item).Error; err != nil {
		log.Println("[ERROR] Failed to update defect:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Error al actualizar el defecto")
	}

	return c.JSON(fiber.Map{"success": true})
}

// ✅ DELETE /api/defects/:id
// Nota: el histórico de capture_defects guarda el código, así que
// borrar del catálogo no rompe reportes viejos.
func (ctrl *DefectController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&model.DefectModel{}, "id = ?", id).Error; err != nil {
		log.Println("[ERROR] Failed to delete defect:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Error al eliminar el defecto")
	}

	return c.JSON(fiber.Map{"success": true})
}
