package dto

// ComplianceRow es una fila del tablero de cumplimiento. Derivada, no
// persistida: se recalcula en cada consulta.
type ComplianceRow struct {
	Autoclave string `json:"autoclave"`
	// CiclosTMES = ciclos nominales del equipo según la configuración vigente
	CiclosTMES int `json:"ciclosTMES"`
	// Mandriles = suma de pesos (quantity) de los slots de mandril
	Mandriles         int `json:"mandriles"`
	PiezasProgramadas int `json:"piezasProgramadas"`
	PiezasBuenas      int `json:"piezasBuenas"`
	PiezasMalas       int `json:"piezasMalas"`
	PiezasTotal       int `json:"piezasTotal"`
	// Cumplimiento es regla de presentación: round(total/programadas×100),
	// 0 cuando no hay programadas
	Cumplimiento int `json:"cumplimiento"`
}
