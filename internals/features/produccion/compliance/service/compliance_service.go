package service

import (
	"context"
	"math"
	"sort"
	"time"

	capturesService "tciv_backend/internals/features/produccion/captures/service"
	"tciv_backend/internals/features/produccion/compliance/dto"
	stationModel "tciv_backend/internals/features/produccion/stations/model"
	"tciv_backend/internals/features/produccion/stations/repository"
)

// ComplianceService junta el store de configuración (Mongo) con los
// agregados de captura (MySQL) y produce el plan-vs-real por estación.
type ComplianceService struct {
	Stations *repository.StationRepository
	Captures *capturesService.CaptureService
}

func NewComplianceService(stations *repository.StationRepository, captures *capturesService.CaptureService) *ComplianceService {
	return &ComplianceService{Stations: stations, Captures: captures}
}

// Aggregate arma las filas del turno vigente: configuraciones de la
// planta + sumas de capturas del día calendario actual.
func (s *ComplianceService) Aggregate(ctx context.Context, shift, plantCode string) ([]dto.ComplianceRow, error) {
	configs, err := s.Stations.ListCurrentConfigs(ctx, plantCode, "autoclave")
	if err != nil {
		return nil, err
	}

	from, to := DayBounds(time.Now())
	actuals, err := s.Captures.ActualsByStation(ctx, from, to, shift)
	if err != nil {
		return nil, err
	}

	return BuildRows(configs, actuals), nil
}

// BuildRows es la parte pura del agregador: determinista para datos
// fijos, sin efectos.
func BuildRows(configs []stationModel.CurrentConfigDoc, actuals map[string]capturesService.StationTotals) []dto.ComplianceRow {
	rows := make([]dto.ComplianceRow, 0, len(configs))
	for _, cfg := range configs {
		weightSum := 0
		for _, slot := range cfg.MandrelConfig {
			weightSum += slot.Quantity
		}

		// cada posición física de mandril entra a dos ciclos por unidad nominal
		planned := int(math.Floor(float64(weightSum) / 2.0 * float64(cfg.Quantity)))

		act := actuals[cfg.StationName] // zero value si no hubo capturas
		total := act.PiezasBuenas + act.PiezasMalas

		rows = append(rows, dto.ComplianceRow{
			Autoclave:         cfg.StationName,
			CiclosTMES:        cfg.Quantity,
			Mandriles:         weightSum,
			PiezasProgramadas: planned,
			PiezasBuenas:      act.PiezasBuenas,
			PiezasMalas:       act.PiezasMalas,
			PiezasTotal:       total,
			Cumplimiento:      CompliancePercent(total, planned),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Autoclave < rows[j].Autoclave
	})
	return rows
}

// CompliancePercent reproduce la regla del tablero:
// round(total/programadas × 100), 0% si no hay piezas programadas.
func CompliancePercent(total, planned int) int {
	if planned <= 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(planned) * 100))
}

// DayBounds regresa [00:00:00, 23:59:59] del día calendario de t.
// Los límites salen etiquetados UTC porque fecha_hora se guarda como
// hora de pared etiquetada UTC: ambos lados del BETWEEN deben vivir en
// el mismo marco aunque el servidor corra en otra zona.
func DayBounds(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	from := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, month, day, 23, 59, 59, 0, time.UTC)
	return from, to
}
