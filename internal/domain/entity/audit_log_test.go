package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuditActionsAreDistinct(t *testing.T) {
	actions := []string{
		AuditActionUserLogin,
		AuditActionUserLogout,
		AuditActionUserRegister,
		AuditActionUserUpdate,
		AuditActionUserDelete,
		AuditActionPasswordChange,
		AuditActionReferralCreate,
		AuditActionReferralUpdate,
		AuditActionReferralDelete,
		AuditActionDocumentUpload,
		AuditActionDocumentDelete,
		AuditActionTeamDrillCreate,
		AuditActionTeamDrillUpdate,
		AuditActionTeamDrillDelete,
		AuditActionCATDrillCreate,
		AuditActionCATDrillBulk,
		AuditActionCATDrillUpdate,
		AuditActionCATDrillDelete,
		AuditActionMedicDrillCreate,
		AuditActionMedicDrillBulk,
		AuditActionMedicDrillUpdate,
		AuditActionMedicDrillDelete,
		AuditActionRosterCreate,
		AuditActionRosterUpdate,
		AuditActionRosterDelete,
		AuditActionSettingCreate,
		AuditActionSettingUpdate,
		AuditActionSettingDelete,
	}

	seen := make(map[string]bool, len(actions))
	for _, action := range actions {
		assert.NotEmpty(t, action)
		assert.False(t, seen[action], "duplicate audit action %q", action)
		seen[action] = true
	}
}

func TestDocumentAuditActions(t *testing.T) {
	// Uploads and deletions must stay distinguishable in the audit trail
	assert.Equal(t, "referral.document_upload", AuditActionDocumentUpload)
	assert.Equal(t, "referral.document_delete", AuditActionDocumentDelete)
}
