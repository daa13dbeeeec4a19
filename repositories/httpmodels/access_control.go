package httpmodels

import (
	"github.com/opentribunal/casework-backend/models"
	"github.com/opentribunal/casework-backend/pure_utils"
)

type HTTPCaseUserRole struct {
	CaseID   string `json:"case_id"`
	UserID   string `json:"user_id"`
	CaseRole string `json:"case_role"`
}

type HTTPCaseUserRolesRequest struct {
	CaseUsers []HTTPCaseUserRole `json:"case_users"`
}

type HTTPCaseUserRolesSearchRequest struct {
	CaseIDs []string `json:"case_ids"`
	UserIDs []string `json:"user_ids,omitempty"`
}

type HTTPCaseUserRolesSearchResponse struct {
	CaseUsers []HTTPCaseUserRole `json:"case_users"`
}

func AdaptHTTPCaseUserRole(binding models.CaseRoleBinding) HTTPCaseUserRole {
	return HTTPCaseUserRole{
		CaseID:   binding.CaseID,
		UserID:   binding.UserID,
		CaseRole: string(binding.Role),
	}
}

func AdaptCaseUserRolesRequest(bindings []models.CaseRoleBinding) HTTPCaseUserRolesRequest {
	return HTTPCaseUserRolesRequest{
		CaseUsers: pure_utils.Map(bindings, AdaptHTTPCaseUserRole),
	}
}

func AdaptCaseRoleBinding(role HTTPCaseUserRole) models.CaseRoleBinding {
	return models.CaseRoleBinding{
		CaseID: role.CaseID,
		UserID: role.UserID,
		Role:   models.CaseRole(role.CaseRole),
	}
}
