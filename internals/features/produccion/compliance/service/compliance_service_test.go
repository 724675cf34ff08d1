package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	capturesService "tciv_backend/internals/features/produccion/captures/service"
	stationModel "tciv_backend/internals/features/produccion/stations/model"
)

func configWithWeights(name string, cycles int, weights ...int) stationModel.CurrentConfigDoc {
	slots := make([]stationModel.MandrelSlot, 0, len(weights))
	for i, w := range weights {
		slots = append(slots, stationModel.MandrelSlot{
			Mandrel:  "M-" + string(rune('A'+i)),
			Quantity: w,
		})
	}
	return stationModel.CurrentConfigDoc{
		StationName:   name,
		Quantity:      cycles,
		MandrelConfig: slots,
	}
}

func TestBuildRowsArithmetic(t *testing.T) {
	// pesos que suman 10, 3 ciclos nominales → floor(10/2 × 3) = 15
	configs := []stationModel.CurrentConfigDoc{
		configWithWeights("AUTOCLAVE 1", 3, 4, 3, 3),
	}
	actuals := map[string]capturesService.StationTotals{
		"AUTOCLAVE 1": {StationName: "AUTOCLAVE 1", PiezasBuenas: 10, PiezasMalas: 2},
	}

	rows := BuildRows(configs, actuals)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 3, row.CiclosTMES)
	assert.Equal(t, 10, row.Mandriles)
	assert.Equal(t, 15, row.PiezasProgramadas)
	assert.Equal(t, 10, row.PiezasBuenas)
	assert.Equal(t, 2, row.PiezasMalas)
	assert.Equal(t, 12, row.PiezasTotal)
	assert.Equal(t, 80, row.Cumplimiento, "round(12/15 × 100) = 80")
}

func TestBuildRowsFloorsOddWeightSum(t *testing.T) {
	// suma impar: floor(7/2 × 3) = floor(10.5) = 10
	configs := []stationModel.CurrentConfigDoc{
		configWithWeights("AUTOCLAVE 2", 3, 4, 3),
	}
	rows := BuildRows(configs, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, 10, rows[0].PiezasProgramadas)
}

func TestBuildRowsDefaultsToZeroWithoutCaptures(t *testing.T) {
	configs := []stationModel.CurrentConfigDoc{
		configWithWeights("AUTOCLAVE 3", 2, 5, 5),
	}

	rows := BuildRows(configs, map[string]capturesService.StationTotals{})
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].PiezasBuenas)
	assert.Zero(t, rows[0].PiezasMalas)
	assert.Zero(t, rows[0].PiezasTotal)
	assert.Zero(t, rows[0].Cumplimiento)
	assert.Equal(t, 10, rows[0].PiezasProgramadas, "el plan existe aunque no haya capturas")
}

func TestBuildRowsSortsByStationName(t *testing.T) {
	configs := []stationModel.CurrentConfigDoc{
		configWithWeights("AUTOCLAVE 3", 1, 2),
		configWithWeights("AUTOCLAVE 1", 1, 2),
		configWithWeights("AUTOCLAVE 2", 1, 2),
	}

	rows := BuildRows(configs, nil)
	require.Len(t, rows, 3)
	assert.Equal(t, "AUTOCLAVE 1", rows[0].Autoclave)
	assert.Equal(t, "AUTOCLAVE 2", rows[1].Autoclave)
	assert.Equal(t, "AUTOCLAVE 3", rows[2].Autoclave)
}

func TestBuildRowsDeterministic(t *testing.T) {
	configs := []stationModel.CurrentConfigDoc{
		configWithWeights("AUTOCLAVE 2", 4, 3, 3),
		configWithWeights("AUTOCLAVE 1", 3, 4, 3, 3),
	}
	actuals := map[string]capturesService.StationTotals{
		"AUTOCLAVE 1": {PiezasBuenas: 10, PiezasMalas: 2},
		"AUTOCLAVE 2": {PiezasBuenas: 4, PiezasMalas: 0},
	}

	first := BuildRows(configs, actuals)
	second := BuildRows(configs, actuals)
	assert.Equal(t, first, second, "función pura del estado almacenado")
}

func TestCompliancePercent(t *testing.T) {
	assert.Equal(t, 80, CompliancePercent(12, 15))
	assert.Equal(t, 100, CompliancePercent(15, 15))
	assert.Equal(t, 107, CompliancePercent(16, 15), "round(106.66) = 107")
	assert.Equal(t, 0, CompliancePercent(12, 0), "sin plan se muestra 0%")
	assert.Equal(t, 0, CompliancePercent(0, 15))
}

func TestDayBounds(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 22, 31, 0, time.UTC)
	from, to := DayBounds(now)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC), to)
}

func TestDayBoundsNonUTCServer(t *testing.T) {
	// fecha_hora se guarda como hora de pared etiquetada UTC; los límites
	// del día deben salir en ese mismo marco aunque el reloj del servidor
	// corra en otra zona
	monterrey := time.FixedZone("CST", -6*60*60)
	now := time.Date(2025, 3, 10, 7, 0, 0, 0, monterrey)

	from, to := DayBounds(now)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC), to)
}

func TestDayBoundsContainsNightShiftCapture(t *testing.T) {
	// una captura de madrugada (turno B) del mismo día calendario debe
	// caer dentro de los límites calculados en cualquier zona del servidor
	stamp, _, err := capturesService.ParseRange("2025-03-10 03:00:00", "2025-03-10 03:00:00")
	require.NoError(t, err)

	for _, zone := range []*time.Location{
		time.UTC,
		time.FixedZone("CST", -6*60*60),
		time.FixedZone("JST", 9*60*60),
	} {
		now := time.Date(2025, 3, 10, 7, 0, 0, 0, zone)
		from, to := DayBounds(now)
		assert.False(t, stamp.Before(from), "zona %v: la captura quedó antes del inicio del día", zone)
		assert.False(t, stamp.After(to), "zona %v: la captura quedó después del fin del día", zone)
	}
}
