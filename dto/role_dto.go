package dto

import (
	"github.com/opentribunal/casework-backend/models"
	"github.com/opentribunal/casework-backend/pure_utils"
)

type ModifyCaseUserRolesBody struct {
	ModificationType string             `json:"modification_type" binding:"required"`
	CaseUsers        []CaseUserRoleBody `json:"case_users" binding:"required,dive"`
}

type CaseUserRoleBody struct {
	CaseID         string `json:"case_id" binding:"required"`
	CaseTypeID     string `json:"case_type_id" binding:"required"`
	UserID         string `json:"user_id"`
	CaseRole       string `json:"case_role" binding:"required"`
	RespondentName string `json:"respondent_name"`
}

func AdaptCaseRoleModificationRequest(body ModifyCaseUserRolesBody) models.CaseRoleModificationRequest {
	return models.CaseRoleModificationRequest{
		Type: models.ModificationType(body.ModificationType),
		Modifications: pure_utils.Map(body.CaseUsers, func(item CaseUserRoleBody) models.CaseRoleModification {
			return models.CaseRoleModification{
				CaseID:         item.CaseID,
				CaseTypeID:     item.CaseTypeID,
				UserID:         item.UserID,
				Role:           models.CaseRole(item.CaseRole),
				RespondentName: item.RespondentName,
			}
		}),
	}
}
