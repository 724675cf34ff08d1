package dto

type DefectRequest struct {
	DefectCode  string `json:"defect_code" validate:"required,max=20"`
	Description string `json:"description" validate:"required,max=200"`
}
