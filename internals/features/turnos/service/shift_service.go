package service

import "time"

// Límites del turno A en minutos desde medianoche.
// Turno A: 05:55 – 15:30 (inicio inclusivo, fin exclusivo). Todo lo
// demás, incluida la madrugada, es turno B.
const (
	shiftAStart = 5*60 + 55
	shiftAEnd   = 15*60 + 30
)

// ResolveShift regresa "A" o "B" según hora y minuto de pared.
// Función pura y total: cualquier (h,m) válido tiene turno.
func ResolveShift(hour, minute int) string {
	t := hour*60 + minute
	if t >= shiftAStart && t < shiftAEnd {
		return "A"
	}
	return "B"
}

// CurrentShift resuelve el turno del instante dado.
// Los clientes con sesión larga deben reconsultar cada minuto para
// cruzar el cambio de turno sin recargar.
func CurrentShift(now time.Time) string {
	return ResolveShift(now.Hour(), now.Minute())
}
