package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Valor centinela para los lookups de enriquecimiento. Estos endpoints
// jamás truenan el flujo de captura: ante cualquier falla contestan
// 200 con "No disponible".
const NotAvailable = "No disponible"

type MandrelController struct {
	// DB apunta al MySQL externo (esquema b10_bartender)
	DB *gorm.DB
}

func NewMandrelController(extDB *gorm.DB) *MandrelController {
	return &MandrelController{DB: extDB}
}

// ✅ GET /api/mandrels/client?sapNumber= : cliente por no. SAP de
// vulcanizado (tabla vulc del sistema de etiquetas)
func (ctrl *MandrelController) GetClient(c *fiber.Ctx) error {
	sapNumber := strings.TrimSpace(c.Query("sapNumber"))
	if sapNumber == "" {
		return c.JSON(fiber.Map{"client": NotAvailable})
	}

	var row struct {
		Client string `gorm:"column:client"`
	}
	err := ctrl.DB.WithContext(c.UserContext()).
		Raw(`SELECT client FROM b10_bartender.vulc WHERE no_sap = ?`, sapNumber).
		Scan(&row).Error
	if err != nil || row.Client == "" {
		if err != nil {
			log.Println("[WARN] Client lookup failed:", err)
		}
		return c.JSON(fiber.Map{"client": NotAvailable})
	}

	return c.JSON(fiber.Map{"client": row.Client})
}

// ✅ GET /api/mandrels/extrusion?mandrel= : no. SAP de extrusión por
// mandril (tabla extr)
func (ctrl *MandrelController) GetExtrusion(c *fiber.Ctx) error {
	mandrel := strings.TrimSpace(c.Query("mandrel"))
	if mandrel == "" {
		return c.JSON(fiber.Map{"no_sap": NotAvailable})
	}

	var row struct {
		NoSap string `gorm:"column:no_sap"`
	}
	err := ctrl.DB.WithContext(c.UserContext()).
		Raw(`SELECT no_sap FROM b10_bartender.extr WHERE cust_part = ?`, mandrel).
		Scan(&row).Error
	if err != nil || row.NoSap == "" {
		if err != nil {
			log.Println("[WARN] Extrusion lookup failed:", err)
		}
		return c.JSON(fiber.Map{"no_sap": NotAvailable})
	}

	return c.JSON(fiber.Map{"no_sap": row.NoSap})
}
