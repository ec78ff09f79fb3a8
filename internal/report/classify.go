package report

import (
	"strings"

	"medical-referrals/internal/domain/entity"
)

// typeRule maps detail-text keywords to a canonical referral type. Rules are
// checked in order and the first match wins, so specific categories (dental)
// must come before generic ones (specialist).
type typeRule struct {
	keywords []string
	result   entity.ReferralType
}

var referralTypeRules = []typeRule{
	{[]string{"dental", "tooth", "root canal", "crown"}, entity.TypeDental},
	{[]string{"orthopedic", "orthopaedic"}, entity.TypeSpecialist},
	{[]string{"physiotherapy", "physical therapy", "occupational therapy"}, entity.TypeTherapy},
	{[]string{"ear nose", "otolaryngolog", "dermatolog", "skin doctor", "urolog", "allerg"}, entity.TypeSpecialist},
	{[]string{"blood test", "blood count", "urine", "hearing test"}, entity.TypeLab},
	{[]string{"ultrasound", "biopsy", "x-ray", "xray"}, entity.TypeImaging},
	{[]string{"surgery"}, entity.TypeSurgery},
}

// InferReferralType maps a free-text referral detail string to a canonical
// referral type. Matching is case-insensitive substring search over an
// ordered rule list; text matching no rule resolves to TypeOther.
func InferReferralType(details string) entity.ReferralType {
	text := strings.ToLower(details)
	for _, rule := range referralTypeRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.result
			}
		}
	}
	return entity.TypeOther
}

// legacyStatusLabels maps free-text status labels found in historical imports
// to canonical status keys.
var legacyStatusLabels = map[string]entity.ReferralStatus{
	"scheduled":                     entity.StatusAppointmentScheduled,
	"appointment scheduled":         entity.StatusAppointmentScheduled,
	"needs coordination":            entity.StatusRequiresCoordination,
	"coordination required":         entity.StatusRequiresCoordination,
	"needs soldier coordination":    entity.StatusRequiresSoldierCoordination,
	"waiting for date":              entity.StatusWaitingForMedicalDate,
	"waiting for medical date":      entity.StatusWaitingForMedicalDate,
	"done":                          entity.StatusCompleted,
	"completed":                     entity.StatusCompleted,
	"cancelled":                     entity.StatusCancelled,
	"canceled":                      entity.StatusCancelled,
	"waiting for budget":            entity.StatusWaitingForBudgetApproval,
	"waiting for budget approval":   entity.StatusWaitingForBudgetApproval,
	"waiting for doctor referral":   entity.StatusWaitingForDoctorReferral,
	"did not show":                  entity.StatusNoShow,
	"no show":                       entity.StatusNoShow,
}

// legacyPriorityLabels maps free-text priority labels from historical imports
// to canonical priority keys.
var legacyPriorityLabels = map[string]entity.ReferralPriority{
	"highest":   entity.PriorityHighest,
	"top":       entity.PriorityHighest,
	"urgent":    entity.PriorityUrgent,
	"high":      entity.PriorityHigh,
	"medium":    entity.PriorityMedium,
	"normal":    entity.PriorityMedium,
	"low":       entity.PriorityLow,
	"minimal":   entity.PriorityMinimal,
	"routine":   entity.PriorityRoutine,
	"elective":  entity.PriorityElective,
	"emergency": entity.PriorityEmergency,
}

// NormalizeStatus maps a legacy status label to its canonical key.
// Unmapped labels fall back to requires_coordination so imported records
// always land in a reviewable state.
func NormalizeStatus(label string) entity.ReferralStatus {
	key := strings.ToLower(strings.TrimSpace(label))
	if status, ok := legacyStatusLabels[key]; ok {
		return status
	}
	return entity.StatusRequiresCoordination
}

// NormalizePriority maps a legacy priority label to its canonical key.
// Unmapped labels fall back to medium.
func NormalizePriority(label string) entity.ReferralPriority {
	key := strings.ToLower(strings.TrimSpace(label))
	if priority, ok := legacyPriorityLabels[key]; ok {
		return priority
	}
	return entity.PriorityMedium
}
