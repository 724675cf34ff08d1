// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "tciv_backend/internals/databases"
	authRoute "tciv_backend/internals/features/users/auth/route"

	captureRoute "tciv_backend/internals/features/produccion/captures/route"
	complianceRoute "tciv_backend/internals/features/produccion/compliance/route"
	defectRoute "tciv_backend/internals/features/produccion/defects/route"
	mandrelRoute "tciv_backend/internals/features/produccion/mandrels/route"
	stationRoute "tciv_backend/internals/features/produccion/stations/route"
	timeRoute "tciv_backend/internals/features/turnos/route"

	authMw "tciv_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	// login, hora/turno del servidor y el tablero de cumplimiento
	// (la pantalla de gráficas corre en displays de piso sin sesión)
	log.Println("[INFO] Setting up PUBLIC routes...")
	public := app.Group("/api")
	authRoute.AuthRoutes(public.Group("/auth"), database.ExtDB)
	timeRoute.TimeRoutes(public)
	complianceRoute.ComplianceRoutes(public, db, database.Mongo)

	// ===================== PRIVATE (sesión JWT) =====================
	// Ojo con el orden: las rutas públicas van registradas ANTES de
	// montar el guard JWT sobre /api, si no el guard las tapa.
	log.Println("[INFO] Setting up PRIVATE routes...")
	private := app.Group("/api",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	stationRoute.StationRoutes(private, database.Mongo)
	mandrelRoute.MandrelRoutes(private, database.ExtDB)
	captureRoute.CaptureRoutes(private, db)
	defectRoute.DefectRoutes(private, db)
}
