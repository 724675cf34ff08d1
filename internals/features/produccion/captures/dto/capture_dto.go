package dto

import "time"

/* ===================== REQUESTS ===================== */

type DefectLine struct {
	DefectCode  string `json:"defect_code" validate:"required"`
	DefectCount int    `json:"defect_count" validate:"gte=0"`
}

type CreateCaptureRequest struct {
	StationName        string `json:"station_name" validate:"required"`
	Mandrel            string `json:"mandrel" validate:"required"`
	Client             string `json:"client"`
	SapNumber          string `json:"sap_number" validate:"required"`
	SapNumberExtrusion string `json:"sap_number_extrusion"`
	Inspector          string `json:"inspector"`
	// fecha_hora llega como datetime "2006-01-02 15:04:05" (o RFC3339)
	FechaHora string `json:"fecha_hora" validate:"required"`
	// los conteos son opcionales y defaultean a 0, pero nunca negativos
	PiezasBuenas *int         `json:"piezas_buenas" validate:"omitempty,gte=0"`
	PiezasMalas  *int         `json:"piezas_malas" validate:"omitempty,gte=0"`
	Shift        string       `json:"shift" validate:"omitempty,oneof=A B"`
	Defects      []DefectLine `json:"defects" validate:"omitempty,dive"`
}

/* ===================== RESPONSES ===================== */

type CreateCaptureResponse struct {
	Success   bool `json:"success"`
	CaptureID uint `json:"capture_id"`
}

// DefectSummaryRow es la variante plana del resumen: una fila por
// línea de defecto, con el contexto de su captura.
type DefectSummaryRow struct {
	CaptureDefectID    uint      `gorm:"column:capture_defect_id" json:"capture_defect_id"`
	DefectCode         string    `gorm:"column:defect_code" json:"defect_code"`
	DefectName         string    `gorm:"column:defect_name" json:"defect_name"`
	TotalMalas         int       `gorm:"column:total_malas" json:"total_malas"`
	CaptureID          uint      `gorm:"column:capture_id" json:"capture_id"`
	StationName        string    `gorm:"column:station_name" json:"station_name"`
	Mandrel            string    `gorm:"column:mandrel" json:"mandrel"`
	Client             string    `gorm:"column:client" json:"client"`
	SapNumber          string    `gorm:"column:sap_number" json:"sap_number"`
	Inspector          string    `gorm:"column:inspector" json:"inspector"`
	FechaHora          time.Time `gorm:"column:fecha_hora" json:"fecha_hora"`
	PiezasBuenas       int       `gorm:"column:piezas_buenas" json:"piezas_buenas"`
	Shift              string    `gorm:"column:shift" json:"shift"`
	SapNumberExtrusion string    `gorm:"column:sap_number_extrusion" json:"sap_number_extrusion"`
}

// DefectGroupRow es la variante agrupada: suma de malas por
// (defecto, mandril, no. SAP extrusión, turno), descendente.
type DefectGroupRow struct {
	DefectCode         string `gorm:"column:defect_code" json:"defect_code"`
	DefectName         string `gorm:"column:defect_name" json:"defect_name"`
	Mandrel            string `gorm:"column:mandrel" json:"mandrel"`
	SapNumberExtrusion string `gorm:"column:sap_number_extrusion" json:"sap_number_extrusion"`
	Shift              string `gorm:"column:shift" json:"shift"`
	TotalMalas         int    `gorm:"column:total_malas" json:"total_malas"`
}

// ScrapByMandrel es una fila de scrap por mandril (solo malas > 0).
type ScrapByMandrel struct {
	Mandrel string `gorm:"column:mandrel" json:"mandrel"`
	Malas   int    `gorm:"column:malas" json:"malas"`
}

type ScrapResponse struct {
	TotalMalas int              `json:"totalMalas"`
	PorMandril []ScrapByMandrel `json:"porMandril"`
}
