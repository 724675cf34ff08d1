package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"tciv_backend/internals/features/produccion/captures/dto"
	"tciv_backend/internals/features/produccion/captures/model"
	turnos "tciv_backend/internals/features/turnos/service"
)

// ErrValidation marca errores de entrada: se contestan 400 y
// garantizan cero escrituras.
var ErrValidation = errors.New("faltan campos requeridos")

type CaptureService struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCaptureService(db *gorm.DB) *CaptureService {
	return &CaptureService{DB: db, Validator: validator.New()}
}

/* ===================== RECORDER ===================== */

// Record valida y persiste una captura con sus líneas de defecto en
// UNA transacción: o entra todo o no entra nada. Si falla el insert de
// líneas, la captura también se revierte.
func (s *CaptureService) Record(ctx context.Context, req *dto.CreateCaptureRequest) (uint, error) {
	if err := s.Validator.Struct(req); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	fechaHora, err := parseFechaHora(req.FechaHora)
	if err != nil {
		return 0, fmt.Errorf("%w: fecha_hora inválida", ErrValidation)
	}

	shift := strings.TrimSpace(req.Shift)
	if shift == "" {
		// si el cliente no manda turno, decide el reloj del servidor
		shift = turnos.CurrentShift(time.Now())
	}

	capture := model.CaptureModel{
		StationName:        strings.TrimSpace(req.StationName),
		Mandrel:            strings.TrimSpace(req.Mandrel),
		Client:             req.Client,
		SapNumber:          strings.TrimSpace(req.SapNumber),
		SapNumberExtrusion: req.SapNumberExtrusion,
		Inspector:          req.Inspector,
		FechaHora:          fechaHora,
		PiezasBuenas:       intOrZero(req.PiezasBuenas),
		PiezasMalas:        intOrZero(req.PiezasMalas),
		Shift:              shift,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&capture).Error; err != nil {
			return err
		}
		if len(req.Defects) == 0 {
			return nil
		}
		lines := make([]model.CaptureDefectModel, 0, len(req.Defects))
		for _, d := range req.Defects {
			lines = append(lines, model.CaptureDefectModel{
				CaptureID:   capture.ID,
				DefectCode:  d.DefectCode,
				DefectCount: d.DefectCount,
			})
		}
		return tx.Create(&lines).Error
	})
	if err != nil {
		return 0, err
	}
	return capture.ID, nil
}

/* ===================== QUERIES ===================== */

// Report regresa las capturas del rango, más reciente primero.
func (s *CaptureService) Report(ctx context.Context, start, end string) ([]model.CaptureModel, error) {
	from, to, err := ParseRange(start, end)
	if err != nil {
		return nil, err
	}

	captures := []model.CaptureModel{}
	err = s.DB.WithContext(ctx).
		Where("fecha_hora BETWEEN ? AND ?", from, to).
		Order("fecha_hora DESC").
		Find(&captures).Error
	return captures, err
}

// DefectSummary (plana): una fila por línea de defecto con su captura,
// en orden de inserción. El catálogo entra con LEFT JOIN: si el
// defecto ya no existe, la descripción cae al código crudo.
func (s *CaptureService) DefectSummary(ctx context.Context, start, end string) ([]dto.DefectSummaryRow, error) {
	from, to, err := ParseRange(start, end)
	if err != nil {
		return nil, err
	}

	rows := []dto.DefectSummaryRow{}
	err = s.DB.WithContext(ctx).Raw(`
		SELECT
			cd.id AS capture_defect_id,
			cd.defect_code,
			COALESCE(d.description, cd.defect_code) AS defect_name,
			cd.defect_count AS total_malas,
			c.id AS capture_id,
			c.station_name,
			c.mandrel,
			c.client,
			c.sap_number,
			c.inspector,
			c.fecha_hora,
			c.piezas_buenas,
			c.shift,
			c.sap_number_extrusion
		FROM capture_defects cd
		JOIN captures c ON cd.capture_id = c.id
		LEFT JOIN defects d ON cd.defect_code = d.defect_code
		WHERE c.fecha_hora BETWEEN ? AND ?
		ORDER BY cd.id`, from, to).
		Scan(&rows).Error
	return rows, err
}

// DefectSummaryGrouped: suma de malas por (defecto, mandril,
// no. SAP extrusión, turno), descendente por total.
func (s *CaptureService) DefectSummaryGrouped(ctx context.Context, start, end string) ([]dto.DefectGroupRow, error) {
	from, to, err := ParseRange(start, end)
	if err != nil {
		return nil, err
	}

	rows := []dto.DefectGroupRow{}
	err = s.DB.WithContext(ctx).Raw(`
		SELECT
			cd.defect_code,
			COALESCE(MAX(d.description), cd.defect_code) AS defect_name,
			c.mandrel,
			c.sap_number_extrusion,
			c.shift,
			SUM(cd.defect_count) AS total_malas
		FROM capture_defects cd
		JOIN captures c ON cd.capture_id = c.id
		LEFT JOIN defects d ON cd.defect_code = d.defect_code
		WHERE c.fecha_hora BETWEEN ? AND ?
		GROUP BY cd.defect_code, c.mandrel, c.sap_number_extrusion, c.shift
		ORDER BY total_malas DESC`, from, to).
		Scan(&rows).Error
	return rows, err
}

// Scrap: malas por mandril de una estación en el rango; se excluyen
// mandriles con cero malas y el total es la suma exacta de lo incluido.
func (s *CaptureService) Scrap(ctx context.Context, station, start, end string) (*dto.ScrapResponse, error) {
	if strings.TrimSpace(station) == "" {
		return nil, fmt.Errorf("%w: station", ErrValidation)
	}
	from, to, err := ParseRange(start, end)
	if err != nil {
		return nil, err
	}

	rows := []dto.ScrapByMandrel{}
	err = s.DB.WithContext(ctx).Raw(`
		SELECT mandrel, SUM(piezas_malas) AS malas
		FROM captures
		WHERE station_name = ?
		  AND fecha_hora >= ?
		  AND fecha_hora <= ?
		GROUP BY mandrel
		HAVING SUM(piezas_malas) > 0`, station, from, to).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	total := 0
	for _, r := range rows {
		total += r.Malas
	}
	return &dto.ScrapResponse{TotalMalas: total, PorMandril: rows}, nil
}

// ActualsByStation: suma de buenas/malas del rango y turno, agrupada
// por estación (insumo del agregador de cumplimiento).
type StationTotals struct {
	StationName  string `gorm:"column:station_name"`
	PiezasBuenas int    `gorm:"column:buenas"`
	PiezasMalas  int    `gorm:"column:malas"`
}

func (s *CaptureService) ActualsByStation(ctx context.Context, from, to time.Time, shift string) (map[string]StationTotals, error) {
	rows := []StationTotals{}
	err := s.DB.WithContext(ctx).Raw(`
		SELECT station_name,
		       COALESCE(SUM(piezas_buenas), 0) AS buenas,
		       COALESCE(SUM(piezas_malas), 0) AS malas
		FROM captures
		WHERE fecha_hora BETWEEN ? AND ?
		  AND shift = ?
		GROUP BY station_name`, from, to, shift).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]StationTotals, len(rows))
	for _, r := range rows {
		totals[r.StationName] = r
	}
	return totals, nil
}

/* ===================== HELPERS ===================== */

// ParseRange interpreta start/end (datetime o solo fecha). Un end de
// solo fecha cubre el día completo (23:59:59).
func ParseRange(start, end string) (time.Time, time.Time, error) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if start == "" || end == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start/end", ErrValidation)
	}

	from, err := parseFechaHora(start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start inválido", ErrValidation)
	}
	to, err := parseFechaHora(end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end inválido", ErrValidation)
	}
	if len(end) == len("2006-01-02") {
		to = to.Add(24*time.Hour - time.Second)
	}
	return from, to, nil
}

func parseFechaHora(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("formato de fecha no reconocido: %q", v)
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
