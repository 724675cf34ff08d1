package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionsForAccessLevel(t *testing.T) {
	assert.Empty(t, PermissionsForAccessLevel(0))
	assert.Empty(t, PermissionsForAccessLevel(-1))

	assert.Equal(t, []string{PermCapture}, PermissionsForAccessLevel(1))
	assert.Equal(t, []string{PermCapture, PermAudit}, PermissionsForAccessLevel(2))
	assert.Equal(t, []string{PermCapture, PermAudit, PermInspector}, PermissionsForAccessLevel(3))
	assert.Contains(t, PermissionsForAccessLevel(4), PermAdmin)
	assert.Contains(t, PermissionsForAccessLevel(5), PermSupervisor)

	// niveles más altos nunca pierden capacidades de los bajos
	for lvl := 2; lvl <= 5; lvl++ {
		perms := PermissionsForAccessLevel(lvl)
		for _, p := range PermissionsForAccessLevel(lvl - 1) {
			assert.Contains(t, perms, p, "nivel %d debe incluir %s", lvl, p)
		}
	}
}
