package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"tciv_backend/internals/configs"
	"tciv_backend/internals/constants"
	"tciv_backend/internals/features/users/auth/dto"
)

type AuthController struct {
	// DB apunta al MySQL externo (esquema empleados), no al de la app.
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

// fila de empleados.del_accesos: tabla externa, solo lectura
type accessRow struct {
	AccID         string `gorm:"column:acc_id"`
	AccNombre     string `gorm:"column:acc_nombre"`
	AccInventario int    `gorm:"column:acc_inventario"`
}

// ✅ POST /api/auth/login: login por número de empleado
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Employee ID is required"})
	}
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	if err := ctrl.Validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Employee ID is required"})
	}

	// 🔍 Buscar en el directorio de empleados
	var row accessRow
	err := ctrl.DB.WithContext(c.UserContext()).
		Raw(`SELECT acc_id, acc_nombre, acc_inventario
		     FROM del_accesos
		     WHERE acc_id = ?`, req.EmployeeID).
		Scan(&row).Error
	if err != nil {
		log.Println("[ERROR] Login query failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error during login"})
	}
	// Scan no regresa error con cero filas: el empleado desconocido
	// se detecta por la fila vacía
	if row.AccID == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee ID not found"})
	}

	permissions := constants.PermissionsForAccessLevel(row.AccInventario)

	// 🔑 Token de sesión (24h) con los permisos como claims
	claims := jwt.MapClaims{
		"employee_id":   row.AccID,
		"employee_name": row.AccNombre,
		"access_level":  row.AccInventario,
		"permissions":   permissions,
		"iat":           time.Now().Unix(),
		"exp":           time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Println("[ERROR] Failed to sign session token:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error during login"})
	}

	return c.JSON(dto.LoginResponse{
		Success:      true,
		EmployeeID:   row.AccID,
		EmployeeName: row.AccNombre,
		AccessLevel:  row.AccInventario,
		Permissions:  permissions,
		Token:        token,
	})
}
