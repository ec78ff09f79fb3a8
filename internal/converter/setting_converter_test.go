package converter

import (
	"testing"
	"time"

	"medical-referrals/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingToResponse(t *testing.T) {
	created := time.Date(2025, time.August, 1, 8, 0, 0, 0, time.UTC)
	updated := time.Date(2025, time.August, 15, 9, 30, 0, 0, time.UTC)

	setting := &entity.SystemSetting{
		ID:          7,
		Key:         "referral.reminder_days",
		Value:       entity.JSON{"days": float64(3)},
		Description: "Days before an appointment to send a reminder",
		CreatedAt:   created,
		UpdatedAt:   updated,
	}

	resp := SettingToResponse(setting)
	require.NotNil(t, resp)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "referral.reminder_days", resp.Key)
	assert.Equal(t, map[string]interface{}{"days": float64(3)}, resp.Value)
	assert.Equal(t, "Days before an appointment to send a reminder", resp.Description)
	assert.Equal(t, created, resp.CreatedAt)
	assert.Equal(t, updated, resp.UpdatedAt)
}

func TestSettingToResponseNil(t *testing.T) {
	assert.Nil(t, SettingToResponse(nil))
}

func TestSettingsToResponses(t *testing.T) {
	settings := []entity.SystemSetting{
		{ID: 1, Key: "a", Value: entity.JSON{"on": true}},
		{ID: 2, Key: "b", Value: entity.JSON{"on": false}},
	}

	responses := SettingsToResponses(settings)
	require.Len(t, responses, 2)
	assert.Equal(t, "a", responses[0].Key)
	assert.Equal(t, "b", responses[1].Key)
}
