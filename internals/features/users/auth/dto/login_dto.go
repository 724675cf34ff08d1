package dto

type LoginRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
}

type LoginResponse struct {
	Success      bool     `json:"success"`
	EmployeeID   string   `json:"employeeId"`
	EmployeeName string   `json:"employeeName"`
	AccessLevel  int      `json:"accessLevel"`
	Permissions  []string `json:"permissions"`
	Token        string   `json:"token"`
}
