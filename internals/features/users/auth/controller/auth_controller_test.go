package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tciv_backend/internals/configs"
	"tciv_backend/internals/constants"
	"tciv_backend/internals/features/users/auth/dto"
)

func newLoginApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// una sola conexión: con :memory: cada conexión nueva sería otra base
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	// espejo mínimo de empleados.del_accesos
	require.NoError(t, db.Exec(`CREATE TABLE del_accesos (
		acc_id TEXT PRIMARY KEY,
		acc_nombre TEXT,
		acc_inventario INTEGER
	)`).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO del_accesos (acc_id, acc_nombre, acc_inventario) VALUES (?, ?, ?)`,
		"12345", "JUAN PEREZ", 2,
	).Error)

	configs.JWTSecret = "test-secret"

	app := fiber.New()
	ctrl := NewAuthController(db)
	app.Post("/api/auth/login", ctrl.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp.StatusCode, payload
}

func TestLoginKnownEmployee(t *testing.T) {
	app := newLoginApp(t)

	status, _ := postLogin(t, app, `{"employeeId":"12345"}`)
	require.Equal(t, fiber.StatusOK, status)

	// re-decodificamos al DTO para checar los campos tipados
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(`{"employeeId":"12345"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Equal(t, "12345", out.EmployeeID)
	assert.Equal(t, "JUAN PEREZ", out.EmployeeName)
	assert.Equal(t, 2, out.AccessLevel)
	assert.Contains(t, out.Permissions, constants.PermCapture)
	assert.Contains(t, out.Permissions, constants.PermAudit)
	assert.NotEmpty(t, out.Token)
}

func TestLoginUnknownEmployee(t *testing.T) {
	app := newLoginApp(t)

	// Scan con cero filas no regresa error: el 404 sale de la fila vacía
	status, payload := postLogin(t, app, `{"employeeId":"99999"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Employee ID not found", payload["error"])
}

func TestLoginMissingEmployeeID(t *testing.T) {
	app := newLoginApp(t)

	status, payload := postLogin(t, app, `{"employeeId":"   "}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Employee ID is required", payload["error"])
}
