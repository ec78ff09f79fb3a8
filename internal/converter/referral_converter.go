package converter

import (
	"time"

	"medical-referrals/internal/delivery/dto"
	"medical-referrals/internal/domain/entity"
)

// ReferralToResponse converts a Referral entity to ReferralResponse DTO.
// WaitingDays and IsUrgent are derived against now.
func ReferralToResponse(referral *entity.Referral, now time.Time) *dto.ReferralResponse {
	if referral == nil {
		return nil
	}

	response := &dto.ReferralResponse{
		ID:                  referral.ID,
		FullName:            referral.FullName,
		PersonalID:          referral.PersonalID,
		Team:                referral.Team,
		ReferralType:        string(referral.ReferralType),
		ReferralDetails:     referral.ReferralDetails,
		HasDocuments:        referral.HasDocuments,
		Priority:            string(referral.Priority),
		Status:              string(referral.Status),
		AppointmentDate:     referral.AppointmentDate,
		AppointmentPath:     referral.AppointmentPath,
		AppointmentLocation: referral.AppointmentLocation,
		Notes:               referral.Notes,
		ReferenceDate:       referral.ReferenceDate,
		WaitingDays:         referral.WaitingDays(now),
		IsUrgent:            referral.IsUrgent(),
		CreatedAt:           referral.CreatedAt,
		UpdatedAt:           referral.UpdatedAt,
		CreatedBy:           referral.CreatedBy,
		LastUpdatedBy:       referral.LastUpdatedBy,
	}

	if len(referral.Documents) > 0 {
		response.Documents = ReferralDocumentsToResponses(referral.Documents)
	}

	return response
}

// ReferralsToResponses converts a slice of Referral entities to response DTOs
func ReferralsToResponses(referrals []entity.Referral, now time.Time) []dto.ReferralResponse {
	responses := make([]dto.ReferralResponse, len(referrals))
	for i := range referrals {
		if resp := ReferralToResponse(&referrals[i], now); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// ReferralDocumentToResponse converts a ReferralDocument entity to its DTO
func ReferralDocumentToResponse(document *entity.ReferralDocument) *dto.ReferralDocumentResponse {
	if document == nil {
		return nil
	}
	return &dto.ReferralDocumentResponse{
		ID:          document.ID,
		ReferralID:  document.ReferralID,
		Title:       document.Title,
		FilePath:    document.FilePath,
		Description: document.Description,
		UploadedAt:  document.UploadedAt,
		UploadedBy:  document.UploadedBy,
	}
}

// ReferralDocumentsToResponses converts a slice of documents to response DTOs
func ReferralDocumentsToResponses(documents []entity.ReferralDocument) []dto.ReferralDocumentResponse {
	responses := make([]dto.ReferralDocumentResponse, len(documents))
	for i := range documents {
		if resp := ReferralDocumentToResponse(&documents[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
