package helperAuth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	sess := &Session{
		EmployeeID:  "12345",
		Permissions: []string{"capture", "audit"},
	}

	assert.True(t, HasPermission(sess, "capture"))
	assert.True(t, HasPermission(sess, "audit"))
	assert.False(t, HasPermission(sess, "admin"))
	assert.False(t, HasPermission(&Session{}, "capture"))
	assert.False(t, HasPermission(nil, "capture"), "sin sesión no hay permisos")
}
