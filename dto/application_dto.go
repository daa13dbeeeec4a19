package dto

import (
	"github.com/opentribunal/casework-backend/models"
)

type DocumentRefBody struct {
	URL       string `json:"url"`
	BinaryURL string `json:"binary_url"`
	Filename  string `json:"filename"`
}

func adaptDocumentRef(body *DocumentRefBody) *models.DocumentRef {
	if body == nil {
		return nil
	}
	return &models.DocumentRef{
		URL:       body.URL,
		BinaryURL: body.BinaryURL,
		Filename:  body.Filename,
	}
}

type StoreApplicationBody struct {
	CaseTypeID         string           `json:"case_type_id" binding:"required"`
	Type               string           `json:"type" binding:"required"`
	Applicant          string           `json:"applicant" binding:"required"`
	Details            string           `json:"details"`
	SupportingDocument *DocumentRefBody `json:"supporting_document"`
}

func AdaptStoreApplicationRequest(caseID string, body StoreApplicationBody) models.StoreApplicationRequest {
	return models.StoreApplicationRequest{
		CaseID:             caseID,
		CaseTypeID:         body.CaseTypeID,
		Type:               models.ApplicationType(body.Type),
		Applicant:          models.Party(body.Applicant),
		Text:               body.Details,
		SupportingDocument: adaptDocumentRef(body.SupportingDocument),
	}
}

type SubmitStoredApplicationBody struct {
	CaseTypeID    string `json:"case_type_id" binding:"required"`
	ApplicationID string `json:"application_id" binding:"required"`
}

type RespondToApplicationBody struct {
	CaseTypeID         string           `json:"case_type_id" binding:"required"`
	Party              string           `json:"party" binding:"required"`
	Response           string           `json:"response"`
	SupportingDocument *DocumentRefBody `json:"supporting_document"`
}

func AdaptRespondToApplicationRequest(caseID, applicationID string, body RespondToApplicationBody) models.RespondToApplicationRequest {
	return models.RespondToApplicationRequest{
		CaseID:             caseID,
		CaseTypeID:         body.CaseTypeID,
		ApplicationID:      applicationID,
		Party:              models.Party(body.Party),
		Text:               body.Response,
		SupportingDocument: adaptDocumentRef(body.SupportingDocument),
	}
}

type StoreResponseBody struct {
	CaseTypeID         string           `json:"case_type_id" binding:"required"`
	Party              string           `json:"party" binding:"required"`
	Response           string           `json:"response"`
	SupportingDocument *DocumentRefBody `json:"supporting_document"`
}

func AdaptStoreResponseRequest(caseID, applicationID string, body StoreResponseBody) models.StoreResponseRequest {
	return models.StoreResponseRequest{
		CaseID:             caseID,
		CaseTypeID:         body.CaseTypeID,
		ApplicationID:      applicationID,
		Party:              models.Party(body.Party),
		Text:               body.Response,
		SupportingDocument: adaptDocumentRef(body.SupportingDocument),
	}
}

type SubmitStoredResponseBody struct {
	CaseTypeID string `json:"case_type_id" binding:"required"`
	ResponseID string `json:"response_id" binding:"required"`
}

type ViewItemBody struct {
	CaseTypeID string `json:"case_type_id" binding:"required"`
}
