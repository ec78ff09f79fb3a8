package policy

import (
	"testing"

	"medical-referrals/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	tests := []struct {
		role    entity.Role
		action  Action
		allowed bool
	}{
		{entity.RoleAdmin, ActionRead, true},
		{entity.RoleAdmin, ActionWrite, true},
		{entity.RoleAdmin, ActionDelete, true},
		{entity.RoleAdmin, ActionManageUsers, true},
		{entity.RoleAdmin, ActionViewAudit, true},

		{entity.RoleManager, ActionRead, true},
		{entity.RoleManager, ActionWrite, true},
		{entity.RoleManager, ActionDelete, true},
		{entity.RoleManager, ActionManageUsers, true},
		{entity.RoleManager, ActionViewAudit, true},

		{entity.RoleUser, ActionRead, true},
		{entity.RoleUser, ActionWrite, true},
		{entity.RoleUser, ActionDelete, false},
		{entity.RoleUser, ActionManageUsers, false},
		{entity.RoleUser, ActionViewAudit, false},

		{entity.RoleViewer, ActionRead, true},
		{entity.RoleViewer, ActionWrite, false},
		{entity.RoleViewer, ActionDelete, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.allowed, Allow(tc.role, tc.action), "%s / %s", tc.role, tc.action)
	}
}

func TestAllowUnknownRole(t *testing.T) {
	assert.False(t, Allow(entity.Role("intruder"), ActionRead))
	assert.False(t, Allow(entity.Role(""), ActionRead))
}
