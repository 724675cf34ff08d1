package model

import "time"

// CaptureModel es un evento de inspección. Inmutable: no existe
// update ni delete sobre captures.
type CaptureModel struct {
	ID                 uint      `gorm:"column:id;primaryKey" json:"id"`
	StationName        string    `gorm:"column:station_name;not null" json:"station_name"`
	Mandrel            string    `gorm:"column:mandrel;not null" json:"mandrel"`
	Client             string    `gorm:"column:client" json:"client"`
	SapNumber          string    `gorm:"column:sap_number;not null" json:"sap_number"`
	SapNumberExtrusion string    `gorm:"column:sap_number_extrusion" json:"sap_number_extrusion"`
	Inspector          string    `gorm:"column:inspector" json:"inspector"`
	FechaHora          time.Time `gorm:"column:fecha_hora;not null;index" json:"fecha_hora"`
	PiezasBuenas       int       `gorm:"column:piezas_buenas;not null;default:0" json:"piezas_buenas"`
	PiezasMalas        int       `gorm:"column:piezas_malas;not null;default:0" json:"piezas_malas"`
	Shift              string    `gorm:"column:shift;type:varchar(1);not null" json:"shift"`
}

func (CaptureModel) TableName() string {
	return "captures"
}

// CaptureDefectModel desglosa las piezas malas de una captura por
// código de defecto. Referencia el catálogo por código, sin FK: un
// defecto borrado del catálogo no invalida el histórico.
type CaptureDefectModel struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	CaptureID   uint   `gorm:"column:capture_id;not null;index" json:"capture_id"`
	DefectCode  string `gorm:"column:defect_code;not null" json:"defect_code"`
	DefectCount int    `gorm:"column:defect_count;not null" json:"defect_count"`
}

func (CaptureDefectModel) TableName() string {
	return "capture_defects"
}
