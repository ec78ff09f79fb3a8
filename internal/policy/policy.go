// Package policy centralizes role-based access decisions. Handlers and
// middleware ask Allow instead of comparing role strings inline, so the
// permission matrix lives in exactly one place.
package policy

import "medical-referrals/internal/domain/entity"

// Action is a permission checked against a user's role
type Action string

const (
	// ActionRead covers listing and fetching records and reports
	ActionRead Action = "read"
	// ActionWrite covers creating and updating records
	ActionWrite Action = "write"
	// ActionDelete covers removing records
	ActionDelete Action = "delete"
	// ActionManageUsers covers account administration
	ActionManageUsers Action = "manage_users"
	// ActionViewAudit covers reading the audit trail
	ActionViewAudit Action = "view_audit"
)

// permissions is the role-to-action matrix. A role not listed here, or an
// action missing from its set, is denied.
var permissions = map[entity.Role]map[Action]bool{
	entity.RoleAdmin: {
		ActionRead:        true,
		ActionWrite:       true,
		ActionDelete:      true,
		ActionManageUsers: true,
		ActionViewAudit:   true,
	},
	entity.RoleManager: {
		ActionRead:        true,
		ActionWrite:       true,
		ActionDelete:      true,
		ActionManageUsers: true,
		ActionViewAudit:   true,
	},
	entity.RoleUser: {
		ActionRead:  true,
		ActionWrite: true,
	},
	entity.RoleViewer: {
		ActionRead: true,
	},
}

// Allow reports whether the role may perform the action
func Allow(role entity.Role, action Action) bool {
	actions, ok := permissions[role]
	if !ok {
		return false
	}
	return actions[action]
}
