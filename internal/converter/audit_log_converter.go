package converter

import (
	"medical-referrals/internal/delivery/dto"
	"medical-referrals/internal/domain/entity"
)

// AuditLogToResponse converts an AuditLog entity to AuditLogResponse DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	response := &dto.AuditLogResponse{
		ID:        log.ID,
		UserID:    log.UserID,
		Action:    log.Action,
		Metadata:  log.Metadata,
		IPAddress: log.IPAddress,
		CreatedAt: log.CreatedAt,
	}

	// Include user info if preloaded
	if log.User != nil {
		response.User = UserToResponse(log.User)
	}

	return response
}

// AuditLogsToResponses converts a slice of AuditLog entities to response DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		if resp := AuditLogToResponse(&logs[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
