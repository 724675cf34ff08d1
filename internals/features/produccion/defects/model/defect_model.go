package model

// DefectModel es una entrada del catálogo de defectos. A diferencia de
// las capturas, el catálogo sí se edita (alta/cambio/baja).
type DefectModel struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	DefectCode  string `gorm:"column:defect_code;not null;uniqueIndex" json:"defect_code"`
	Description string `gorm:"column:description;not null" json:"description"`
}

func (DefectModel) TableName() string {
	return "defects"
}
