package converter

import (
	"testing"
	"time"

	"medical-referrals/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferralToResponse(t *testing.T) {
	now := time.Date(2025, time.August, 20, 12, 0, 0, 0, time.UTC)

	referral := &entity.Referral{
		ID:              7,
		FullName:        "Dana Levi",
		PersonalID:      "1234567",
		Team:            "alpha",
		ReferralType:    entity.TypeDental,
		ReferralDetails: "root canal",
		Priority:        entity.PriorityUrgent,
		Status:          entity.StatusRequiresCoordination,
		CreatedAt:       now.AddDate(0, 0, -15),
		UpdatedAt:       now,
	}

	response := ReferralToResponse(referral, now)

	require.NotNil(t, response)
	assert.Equal(t, int64(7), response.ID)
	assert.Equal(t, "dental", response.ReferralType)
	assert.Equal(t, 15, response.WaitingDays)
	assert.True(t, response.IsUrgent)
	assert.Empty(t, response.Documents)

	t.Run("nil passes through", func(t *testing.T) {
		assert.Nil(t, ReferralToResponse(nil, now))
	})

	t.Run("closed referrals report zero waiting days", func(t *testing.T) {
		closed := *referral
		closed.Status = entity.StatusCompleted
		assert.Zero(t, ReferralToResponse(&closed, now).WaitingDays)
	})

	t.Run("documents are converted when present", func(t *testing.T) {
		withDocs := *referral
		withDocs.Documents = []entity.ReferralDocument{{ID: 1, ReferralID: 7, Title: "referral letter"}}
		response := ReferralToResponse(&withDocs, now)
		require.Len(t, response.Documents, 1)
		assert.Equal(t, "referral letter", response.Documents[0].Title)
	})
}
