package usecases

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/opentribunal/casework-backend/models"
	"github.com/opentribunal/casework-backend/repositories/clock"
	"github.com/opentribunal/casework-backend/utils"
)

// applicationResponseWindow is how long the other party has to respond
// once a stored application is submitted.
const applicationResponseWindow = 7 * 24 * time.Hour

type NotifyRepository interface {
	SendEmail(ctx context.Context, creds models.Credentials, email models.EmailRequest) (string, error)
}

type DocRenderRepository interface {
	RenderResponseDocument(ctx context.Context, creds models.Credentials, caseReference string,
		application models.GenericApplicationItem, response models.ResponseItem) (models.DocumentRef, error)
}

// ApplicationUsecase drives the shared application lifecycle. Every
// operation is one load → mutate → submit cycle through the CaseMutator;
// nothing is ever partially persisted.
type ApplicationUsecase struct {
	mutator   CaseMutator
	notify    NotifyRepository
	docRender DocRenderRepository
	clock     clock.Clock
	templates models.EmailTemplates
}

// StoreApplication creates the application in the stored (draft) state and
// acknowledges it by email. A dispatch failure surfaces even though the
// case mutation already committed.
func (uc ApplicationUsecase) StoreApplication(ctx context.Context, creds models.Credentials,
	request models.StoreApplicationRequest,
) (models.CaseRecord, error) {
	if !request.Applicant.Valid() {
		return models.CaseRecord{}, models.BadParameterError
	}

	item := models.GenericApplicationItem{
		ID:                 uuid.NewString(),
		Type:               request.Type,
		Applicant:          request.Applicant,
		Text:               request.Text,
		Status:             models.AppStatusStored,
		SupportingDocument: request.SupportingDocument,
	}

	record, err := uc.mutator.Update(ctx, creds, request.CaseTypeID, request.CaseID,
		models.CaseEventStoreApplication,
		func(data *models.CaseData) error {
			data.Applications = append(data.Applications, item)
			return nil
		})
	if err != nil {
		return models.CaseRecord{}, err
	}

	return record, uc.acknowledge(ctx, creds, record, uc.templates.ApplicationStored, item.ID)
}

// SubmitStoredApplication moves a stored application into its live status
// and starts the response window.
func (uc ApplicationUsecase) SubmitStoredApplication(ctx context.Context, creds models.Credentials,
	request models.SubmitStoredApplicationRequest,
) (models.CaseRecord, error) {
	var applicationID string

	record, err := uc.mutator.Update(ctx, creds, request.CaseTypeID, request.CaseID,
		models.CaseEventSubmitApplication,
		func(data *models.CaseData) error {
			application, err := data.FindApplication(request.ApplicationID)
			if err != nil {
				return err
			}
			if application.Status != models.AppStatusStored {
				return models.ErrApplicationNotStored
			}

			now := uc.clock.Now()
			dueDate := now.Add(applicationResponseWindow)
			if err := application.Transition(application.Type.SubmittedStatus()); err != nil {
				return err
			}
			application.Date = &now
			application.DueDate = &dueDate
			applicationID = application.ID
			return nil
		})
	if err != nil {
		return models.CaseRecord{}, err
	}

	return record, uc.acknowledge(ctx, creds, record, uc.templates.ApplicationSubmitted, applicationID)
}

// RespondToApplication appends the party's response, hands the application
// to the tribunal and acknowledges the response by email. Rendering the
// response as a document is best effort: a render failure is logged and the
// transition commits without it.
func (uc ApplicationUsecase) RespondToApplication(ctx context.Context, creds models.Credentials,
	request models.RespondToApplicationRequest,
) (models.CaseRecord, error) {
	if !request.Party.Valid() {
		return models.CaseRecord{}, models.BadParameterError
	}

	record, err := uc.mutator.Update(ctx, creds, request.CaseTypeID, request.CaseID,
		models.CaseEventRespondApplication,
		func(data *models.CaseData) error {
			application, err := data.FindApplication(request.ApplicationID)
			if err != nil {
				return err
			}
			if err := expectsResponseFrom(application, request.Party); err != nil {
				return err
			}

			response := models.ResponseItem{
				ID:                 uuid.NewString(),
				Author:             request.Party,
				Date:               uc.clock.Now(),
				Text:               request.Text,
				SupportingDocument: request.SupportingDocument,
			}
			if err := uc.appendResponse(application, response); err != nil {
				return err
			}

			if document, err := uc.docRender.RenderResponseDocument(ctx, creds,
				data.CaseReference, *application, response); err != nil {
				utils.LoggerFromContext(ctx).ErrorContext(ctx,
					"response document rendering failed, committing response without it",
					"caseId", request.CaseID, "applicationId", application.ID, "error", err)
			} else {
				application.Responses[len(application.Responses)-1].ResponseDocument = &document
			}
			return nil
		})
	if err != nil {
		return models.CaseRecord{}, err
	}

	return record, uc.acknowledge(ctx, creds, record, uc.templates.ApplicationResponded, request.ApplicationID)
}

// StoreResponse saves a draft response on the application without touching
// its top-level status.
func (uc ApplicationUsecase) StoreResponse(ctx context.Context, creds models.Credentials,
	request models.StoreResponseRequest,
) (models.CaseRecord, error) {
	if !request.Party.Valid() {
		return models.CaseRecord{}, models.BadParameterError
	}

	return uc.mutator.Update(ctx, creds, request.CaseTypeID, request.CaseID,
		models.CaseEventRespondApplication,
		func(data *models.CaseData) error {
			application, err := data.FindApplication(request.ApplicationID)
			if err != nil {
				return err
			}
			application.StoredResponses = append(application.StoredResponses, models.ResponseItem{
				ID:                 uuid.NewString(),
				Author:             request.Party,
				Date:               uc.clock.Now(),
				Text:               request.Text,
				SupportingDocument: request.SupportingDocument,
			})
			return nil
		})
}

// SubmitStoredResponse promotes a draft response into the canonical respond
// collection.
func (uc ApplicationUsecase) SubmitStoredResponse(ctx context.Context, creds models.Credentials,
	request models.SubmitStoredResponseRequest,
) (models.CaseRecord, error) {
	return uc.mutator.Update(ctx, creds, request.CaseTypeID, request.CaseID,
		models.CaseEventRespondApplication,
		func(data *models.CaseData) error {
			application, err := data.FindApplication(request.ApplicationID)
			if err != nil {
				return err
			}
			index, err := application.FindStoredResponse(request.ResponseID)
			if err != nil {
				return err
			}

			response := application.StoredResponses[index]
			response.Date = uc.clock.Now()
			application.StoredResponses = slices.Delete(application.StoredResponses, index, index+1)
			return uc.appendResponse(application, response)
		})
}

// ViewApplication records that the caller has seen the application. The
// per-user entry is updated in place when it exists and appended otherwise,
// so the list never grows past one entry per distinct viewer.
func (uc ApplicationUsecase) ViewApplication(ctx context.Context, creds models.Credentials,
	request models.ViewApplicationRequest,
) (models.CaseRecord, error) {
	return uc.mutator.Update(ctx, creds, request.CaseTypeID, request.CaseID,
		models.CaseEventViewApplication,
		func(data *models.CaseData) error {
			application, err := data.FindApplication(request.ApplicationID)
			if err != nil {
				return err
			}
			application.ViewStatus.Record(creds.UserID, models.ViewStatusViewed)
			return nil
		})
}

func (uc ApplicationUsecase) appendResponse(application *models.GenericApplicationItem, response models.ResponseItem) error {
	if err := application.Transition(models.AppStatusWaitingForTribunal); err != nil {
		return err
	}
	application.Responses = append(application.Responses, response)
	application.ResponsesCount = len(application.Responses)
	switch response.Author {
	case models.PartyClaimant:
		application.IsClaimantResponseDue = false
	case models.PartyRespondent:
		application.IsRespondentResponseDue = false
	}
	return nil
}

func (uc ApplicationUsecase) acknowledge(ctx context.Context, creds models.Credentials,
	record models.CaseRecord, templateID, applicationID string,
) error {
	if record.Data.ClaimantEmail == "" {
		return nil
	}
	_, err := uc.notify.SendEmail(ctx, creds, models.EmailRequest{
		TemplateID: templateID,
		Recipient:  record.Data.ClaimantEmail,
		Parameters: map[string]string{
			"caseReference": record.Data.CaseReference,
			"claimant":      record.Data.ClaimantFullName,
		},
		Reference: fmt.Sprintf("%s-%s", record.ID, applicationID),
	})
	return err
}

// expectsResponseFrom enforces the respond precondition: when the tribunal
// has asked exactly one party for a response, only that party may answer.
func expectsResponseFrom(application *models.GenericApplicationItem, party models.Party) error {
	if application.IsClaimantResponseDue && !application.IsRespondentResponseDue && party != models.PartyClaimant {
		return models.ErrUnexpectedResponder
	}
	if application.IsRespondentResponseDue && !application.IsClaimantResponseDue && party != models.PartyRespondent {
		return models.ErrUnexpectedResponder
	}
	return nil
}
