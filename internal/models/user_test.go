package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleElevated(t *testing.T) {
	assert.True(t, RoleAdmin.Elevated())
	assert.True(t, RoleOwner.Elevated())
	assert.False(t, RoleCustomer.Elevated())
	assert.False(t, Role("Admin").Elevated(), "role comparison is exact, not case-folded")
	assert.False(t, Role("").Elevated())
}
