package report

import (
	"testing"

	"medical-referrals/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestInferReferralType(t *testing.T) {
	tests := []struct {
		details  string
		expected entity.ReferralType
	}{
		{"Root canal treatment", entity.TypeDental},
		{"ORTHOPEDIC consult for knee pain", entity.TypeSpecialist},
		{"physiotherapy after sprain", entity.TypeTherapy},
		{"dermatologist appointment", entity.TypeSpecialist},
		{"blood test, fasting", entity.TypeLab},
		{"ultrasound of shoulder", entity.TypeImaging},
		{"knee surgery evaluation", entity.TypeSurgery},
		{"something unclassifiable", entity.TypeOther},
		{"", entity.TypeOther},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, InferReferralType(tc.details), "details: %q", tc.details)
	}
}

func TestInferReferralTypeFirstMatchWins(t *testing.T) {
	// Dental rules precede the surgery rule, so mixed text stays dental
	assert.Equal(t, entity.TypeDental, InferReferralType("tooth extraction surgery"))
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, entity.StatusAppointmentScheduled, NormalizeStatus("Scheduled"))
	assert.Equal(t, entity.StatusCompleted, NormalizeStatus("  done  "))
	assert.Equal(t, entity.StatusCancelled, NormalizeStatus("canceled"))
	assert.Equal(t, entity.StatusNoShow, NormalizeStatus("no show"))

	t.Run("unmapped labels land in requires_coordination", func(t *testing.T) {
		assert.Equal(t, entity.StatusRequiresCoordination, NormalizeStatus("mystery state"))
		assert.Equal(t, entity.StatusRequiresCoordination, NormalizeStatus(""))
	})
}

func TestNormalizePriority(t *testing.T) {
	assert.Equal(t, entity.PriorityHighest, NormalizePriority("TOP"))
	assert.Equal(t, entity.PriorityUrgent, NormalizePriority("urgent"))
	assert.Equal(t, entity.PriorityMedium, NormalizePriority("normal"))
	assert.Equal(t, entity.PriorityEmergency, NormalizePriority("emergency"))

	t.Run("unmapped labels fall back to medium", func(t *testing.T) {
		assert.Equal(t, entity.PriorityMedium, NormalizePriority("whenever"))
		assert.Equal(t, entity.PriorityMedium, NormalizePriority(""))
	})
}
