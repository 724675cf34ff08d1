package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveShiftBoundaries(t *testing.T) {
	cases := []struct {
		hour, minute int
		want         string
	}{
		{5, 54, "B"},  // un minuto antes del arranque
		{5, 55, "A"},  // arranque inclusivo
		{15, 29, "A"}, // último minuto del turno A
		{15, 30, "B"}, // fin exclusivo
		{0, 0, "B"},
		{23, 59, "B"},
		{10, 0, "A"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%02d:%02d", tc.hour, tc.minute), func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveShift(tc.hour, tc.minute))
		})
	}
}

func TestResolveShiftTotal(t *testing.T) {
	// barrido completo: todo minuto del día tiene turno y coincide con la ventana
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			got := ResolveShift(h, m)
			mins := h*60 + m
			if mins >= 5*60+55 && mins < 15*60+30 {
				assert.Equal(t, "A", got, "%02d:%02d", h, m)
			} else {
				assert.Equal(t, "B", got, "%02d:%02d", h, m)
			}
		}
	}
}

func TestCurrentShift(t *testing.T) {
	noon := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	midnight := time.Date(2025, 3, 10, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, "A", CurrentShift(noon))
	assert.Equal(t, "B", CurrentShift(midnight))
}
