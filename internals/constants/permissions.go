package constants

import "fmt"

// Permisos gruesos de la aplicación. Vienen del nivel de acceso
// (acc_inventario) del directorio de empleados, no de un rol editable.
const (
	PermCapture    = "capture"
	PermAudit      = "audit"
	PermInspector  = "inspector"
	PermAdmin      = "admin"
	PermSupervisor = "supervisor"
)

// Template de mensajes de error por permiso
const (
	ErrNeedCapture = "❌ Se requiere permiso de captura para %s."
	ErrNeedAudit   = "❌ Se requiere permiso de auditoría para %s."
	ErrNeedAdmin   = "❌ Solo un administrador puede usar %s."
)

func PermErrorCapture(feature string) string {
	return fmt.Sprintf(ErrNeedCapture, feature)
}

func PermErrorAudit(feature string) string {
	return fmt.Sprintf(ErrNeedAudit, feature)
}

func PermErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrNeedAdmin, feature)
}

// ==========================
// ✅ Grouped Permission Slices
// ==========================
var (
	AllPermissions = []string{
		PermCapture,
		PermAudit,
		PermInspector,
		PermAdmin,
		PermSupervisor,
	}

	AuditAndAbove = []string{
		PermAudit,
		PermAdmin,
		PermSupervisor,
	}

	AdminOnly = []string{
		PermAdmin,
		PermSupervisor,
	}
)

// PermissionsForAccessLevel mapea acc_inventario → permisos.
// Niveles 1-3 son los históricos del directorio; 4 y 5 existen para
// administración y supervisión de planta.
func PermissionsForAccessLevel(level int) []string {
	switch {
	case level <= 0:
		return []string{}
	case level == 1:
		return []string{PermCapture}
	case level == 2:
		return []string{PermCapture, PermAudit}
	case level == 3:
		return []string{PermCapture, PermAudit, PermInspector}
	case level == 4:
		return []string{PermCapture, PermAudit, PermInspector, PermAdmin}
	default:
		return []string{PermCapture, PermAudit, PermInspector, PermAdmin, PermSupervisor}
	}
}
