package helperAuth

import (
	"github.com/gofiber/fiber/v2"
)

// Llaves de Locals que hidrata el middleware JWT
const (
	LocSession = "session"
)

// Session es el estado de autenticación por request. Reemplaza al
// estado ambiental del cliente: viaja en el token y se lee de Locals,
// nunca de un singleton de proceso.
type Session struct {
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	AccessLevel  int      `json:"access_level"`
	Permissions  []string `json:"permissions"`
}

// SessionFromCtx regresa la sesión hidratada por el middleware (o nil).
func SessionFromCtx(c *fiber.Ctx) *Session {
	s, _ := c.Locals(LocSession).(*Session)
	return s
}

// HasPermission es función pura: no toca red ni estado global.
func HasPermission(s *Session, capability string) bool {
	if s == nil {
		return false
	}
	for _, p := range s.Permissions {
		if p == capability {
			return true
		}
	}
	return false
}
