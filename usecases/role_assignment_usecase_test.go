package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opentribunal/casework-backend/mocks"
	"github.com/opentribunal/casework-backend/models"
)

type RoleAssignmentTestSuite struct {
	suite.Suite
	caseStore     *mocks.CaseStoreRepository
	accessControl *mocks.AccessControlRepository

	ctx   context.Context
	creds models.Credentials
}

func (suite *RoleAssignmentTestSuite) SetupTest() {
	suite.caseStore = new(mocks.CaseStoreRepository)
	suite.accessControl = new(mocks.AccessControlRepository)
	suite.ctx = context.Background()
	suite.creds = models.Credentials{UserID: "user-1", BearerToken: "bearer"}
}

func (suite *RoleAssignmentTestSuite) makeUsecase() RoleAssignmentUsecase {
	return RoleAssignmentUsecase{
		mutator:       NewCaseMutator(suite.caseStore),
		accessControl: suite.accessControl,
	}
}

func (suite *RoleAssignmentTestSuite) assignmentRequest() models.CaseRoleModificationRequest {
	return models.CaseRoleModificationRequest{
		Type: models.ModificationAssignment,
		Modifications: []models.CaseRoleModification{{
			CaseID:     "12345678",
			CaseTypeID: "tribunal-case",
			UserID:     "user-1",
			Role:       models.CaseRoleDefendant,
		}},
	}
}

func (suite *RoleAssignmentTestSuite) expectedBindings() []models.CaseRoleBinding {
	return []models.CaseRoleBinding{{CaseID: "12345678", UserID: "user-1", Role: models.CaseRoleDefendant}}
}

func (suite *RoleAssignmentTestSuite) caseWithRespondent(respondent models.Respondent) models.CaseRecord {
	return models.CaseRecord{
		ID:         "12345678",
		CaseTypeID: "tribunal-case",
		Data:       models.CaseData{Respondents: []models.Respondent{respondent}},
	}
}

func (suite *RoleAssignmentTestSuite) TestAssignment_LinksRespondentAndResetsLinkStatuses() {
	record := suite.caseWithRespondent(models.Respondent{Name: "Acme Ltd"})
	suite.caseStore.On("GetCase", suite.ctx, suite.creds, "tribunal-case", "12345678").
		Return(record, nil)
	suite.accessControl.On("AddCaseUserRoles", suite.ctx, suite.creds, suite.expectedBindings()).
		Return(nil)
	suite.caseStore.On("StartEvent", suite.ctx, suite.creds, "tribunal-case", "12345678",
		models.CaseEventAssignCaseAccess).
		Return(models.CaseUpdate{Token: "token-1", Event: models.CaseEventAssignCaseAccess, Record: record}, nil)
	suite.caseStore.On("SubmitEvent", suite.ctx, suite.creds, "tribunal-case", "12345678",
		mock.MatchedBy(func(update models.CaseUpdate) bool {
			respondent := update.Record.Data.Respondents[0]
			return respondent.IdamID.String == "user-1" &&
				respondent.LinkStatuses[models.LinkSectionPersonalDetails] == models.LinkStatusNotStarted &&
				respondent.LinkStatuses[models.LinkSectionDocuments] == models.LinkStatusNotAvailable
		})).
		Return(record, nil)

	err := suite.makeUsecase().ModifyUserCaseRoles(suite.ctx, suite.creds, suite.assignmentRequest())

	suite.NoError(err)
	suite.accessControl.AssertNotCalled(suite.T(), "RemoveCaseUserRoles",
		mock.Anything, mock.Anything, mock.Anything)
	suite.caseStore.AssertExpectations(suite.T())
	suite.accessControl.AssertExpectations(suite.T())
}

func (suite *RoleAssignmentTestSuite) TestAssignment_LinkageFailureCompensatesTheGrant() {
	boom := errors.New("case store is having a bad day")
	record := suite.caseWithRespondent(models.Respondent{Name: "Acme Ltd"})
	suite.caseStore.On("GetCase", suite.ctx, suite.creds, "tribunal-case", "12345678").
		Return(record, nil)
	suite.accessControl.On("AddCaseUserRoles", suite.ctx, suite.creds, suite.expectedBindings()).
		Return(nil)
	suite.caseStore.On("StartEvent", suite.ctx, suite.creds, "tribunal-case", "12345678",
		models.CaseEventAssignCaseAccess).
		Return(models.CaseUpdate{Token: "token-1", Event: models.CaseEventAssignCaseAccess, Record: record}, nil)
	suite.caseStore.On("SubmitEvent", suite.ctx, suite.creds, "tribunal-case", "12345678", mock.Anything).
		Return(models.CaseRecord{}, boom)
	suite.accessControl.On("RemoveCaseUserRoles", suite.ctx, suite.creds, suite.expectedBindings()).
		Return(nil)

	err := suite.makeUsecase().ModifyUserCaseRoles(suite.ctx, suite.creds, suite.assignmentRequest())

	suite.ErrorIs(err, models.ErrRoleAssignmentFailed)
	suite.ErrorIs(err, boom)
	suite.accessControl.AssertExpectations(suite.T())
}

func (suite *RoleAssignmentTestSuite) TestAssignment_CompensationFailureDoesNotMaskTheCause() {
	boom := errors.New("linkage update failed")
	record := suite.caseWithRespondent(models.Respondent{Name: "Acme Ltd"})
	suite.caseStore.On("GetCase", suite.ctx, suite.creds, "tribunal-case", "12345678").
		Return(record, nil)
	suite.accessControl.On("AddCaseUserRoles", suite.ctx, suite.creds, suite.expectedBindings()).
		Return(nil)
	suite.caseStore.On("StartEvent", suite.ctx, suite.creds, "tribunal-case", "12345678",
		models.CaseEventAssignCaseAccess).
		Return(models.CaseUpdate{Token: "token-1", Event: models.CaseEventAssignCaseAccess, Record: record}, nil)
	suite.caseStore.On("SubmitEvent", suite.ctx, suite.creds, "tribunal-case", "12345678", mock.Anything).
		Return(models.CaseRecord{}, boom)
	suite.accessControl.On("RemoveCaseUserRoles", suite.ctx, suite.creds, suite.expectedBindings()).
		Return(errors.Wrap(models.ErrCaseNotFound, "case vanished during rollback"))

	err := suite.makeUsecase().ModifyUserCaseRoles(suite.ctx, suite.creds, suite.assignmentRequest())

	suite.ErrorIs(err, boom)
	suite.ErrorIs(err, models.ErrRoleAssignmentFailed)
	suite.NotErrorIs(err, models.ErrCaseNotFound)
}

func (suite *RoleAssignmentTestSuite) TestAssignment_SameUserReassignmentIsIdempotent() {
	respondent := models.Respondent{Name: "Acme Ltd", IdamID: null.StringFrom("user-1")}
	record := suite.caseWithRespondent(respondent)
	suite.caseStore.On("GetCase", suite.ctx, suite.creds, "tribunal-case", "12345678").
		Return(record, nil)
	suite.accessControl.On("AddCaseUserRoles", suite.ctx, suite.creds, suite.expectedBindings()).
		Return(nil)
	suite.caseStore.On("StartEvent", suite.ctx, suite.creds, "tribunal-case", "12345678",
		models.CaseEventAssignCaseAccess).
		Return(models.CaseUpdate{Token: "token-1", Event: models.CaseEventAssignCaseAccess, Record: record}, nil)

	err := suite.makeUsecase().ModifyUserCaseRoles(suite.ctx, suite.creds, suite.assignmentRequest())

	suite.NoError(err)
	suite.accessControl.AssertNotCalled(suite.T(), "RemoveCaseUserRoles",
		mock.Anything, mock.Anything, mock.Anything)
	suite.caseStore.AssertNotCalled(suite.T(), "SubmitEvent",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RoleAssignmentTestSuite) TestAssignment_AlreadyLinkedItemDoesNotSkipTheRemainingOnes() {
	request := models.CaseRoleModificationRequest{
		Type: models.ModificationAssignment,
		Modifications: []models.CaseRoleModification{
			{CaseID: "case-1", CaseTypeID: "tribunal-case", UserID: "user-1", Role: models.CaseRoleDefendant},
			{CaseID: "case-2", CaseTypeID: "tribunal-case", UserID: "user-1", Role: models.CaseRoleDefendant},
		},
	}
	linked := models.CaseRecord{
		ID:         "case-1",
		CaseTypeID: "tribunal-case",
		Data: models.CaseData{Respondents: []models.Respondent{
			{Name: "Acme Ltd", IdamID: null.StringFrom("user-1")},
		}},
	}
	unlinked := models.CaseRecord{
		ID:         "case-2",
		CaseTypeID: "tribunal-case",
		Data:       models.CaseData{Respondents: []models.Respondent{{Name: "Globex Corp"}}},
	}

	suite.caseStore.On("GetCase", suite.ctx, suite.creds, "tribunal-case", "case-1").Return(linked, nil)
	suite.caseStore.On("GetCase", suite.ctx, suite.creds, "tribunal-case", "case-2").Return(unlinked, nil)
	suite.accessControl.On("AddCaseUserRoles", suite.ctx, suite.creds, []models.CaseRoleBinding{
		{CaseID: "case-1", UserID: "user-1", Role: models.CaseRoleDefendant},
		{CaseID: "case-2", UserID: "user-1", Role: models.CaseRoleDefendant},
	}).Return(nil)
	suite.caseStore.On("StartEvent", suite.ctx, suite.creds, "tribunal-case", "case-1",
		models.CaseEventAssignCaseAccess).
		Return(models.CaseUpdate{Token: "token-1", Event: models.CaseEventAssignCaseAccess, Record: linked}, nil)
	suite.caseStore.On("StartEvent", suite.ctx, suite.creds, "tribunal-case", "case-2",
		models.CaseEventAssignCaseAccess).
		Return(models.CaseUpdate{Token: "token-2", Event: models.CaseEventAssignCaseAccess, Record: unlinked}, nil)
	suite.caseStore.On("SubmitEvent", suite.ctx, suite.creds, "tribunal-case", "case-2",
		mock.MatchedBy(func(update models.CaseUpdate) bool {
			return update.Record.Data.Respondents[0].IdamID.String == "user-1"
		})).
		Return(unlinked, nil)

	err := suite.makeUsecase().ModifyUserCaseRoles(suite.ctx, suite.creds, request)

	suite.NoError(err)
	// The first item is a replayed grant and only its version token is
	// abandoned; the second item must still be linked and submitted.
	suite.caseStore.AssertNumberOfCalls(suite.T(), "SubmitEvent", 1)
	suite.accessControl.AssertNotCalled(suite.T(), "RemoveCaseUserRoles",
		mock.Anything, mock.Anything, mock.Anything)
	suite.caseStore.AssertExpectations(suite.T())
	suite.accessControl.AssertExpectations(suite.T())
}

func (suite *RoleAssignmentTestSuite) TestAssignment_AnotherUsersRespondentTriggersRollback() {
	respondent := models.Respondent{Name: "Acme Ltd", IdamID: null.StringFrom("someone-else")}
	record := suite.caseWithRespondent(respondent)
	suite.caseStore.On("GetCase", suite.ctx, suite.creds, "tribunal-case", "12345678").
		Return(record, nil)
	suite.accessControl.On("AddCaseUserRoles", suite.ctx, suite.creds, suite.expectedBindings()).
		Return(nil)
	suite.caseStore.On("StartEvent", suite.ctx, suite.creds, "tribunal-case", "12345678",
		models.CaseEventAssignCaseAccess).
		Return(models.CaseUpdate{Token: "token-1", Event: models.CaseEventAssignCaseAccess, Record: record}, nil)
	suite.accessControl.On("RemoveCaseUserRoles", suite.ctx, suite.creds, suite.expectedBindings()).
		Return(nil)

	err := suite.makeUsecase().ModifyUserCaseRoles(suite.ctx, suite.creds, suite.assignmentRequest())

	suite.ErrorIs(err, models.ErrRoleAssignmentFailed)
	suite.ErrorIs(err, models.ErrAccountLinkedToAnotherUser)
	suite.accessControl.AssertExpectations(suite.T())
}

func (suite *RoleAssignmentTestSuite) TestAssignment_EmptyRespondentCollectionFailsBeforeAnyMutation() {
	record := models.CaseRecord{ID: "12345678", CaseTypeID: "tribunal-case"}
	suite.caseStore.On("GetCase", suite.ctx, suite.creds, "tribunal-case", "12345678").
		Return(record, nil)

	err := suite.makeUsecase().ModifyUserCaseRoles(suite.ctx, suite.creds, suite.assignmentRequest())

	suite.ErrorIs(err, models.ErrRespondentCollectionEmpty)
	suite.accessControl.AssertNotCalled(suite.T(), "AddCaseUserRoles",
		mock.Anything, mock.Anything, mock.Anything)
	suite.caseStore.AssertNotCalled(suite.T(), "StartEvent",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RoleAssignmentTestSuite) TestRevoke_ClearsLinkageBeforeRemovingTheBinding() {
	respondent := models.Respondent{
		Name:         "Acme Ltd",
		IdamID:       null.StringFrom("user-1"),
		LinkStatuses: models.DefaultLinkStatuses(),
	}
	record := suite.caseWithRespondent(respondent)
	suite.caseStore.On("StartEvent", suite.ctx, suite.creds, "tribunal-case", "12345678",
		models.CaseEventRevokeCaseAccess).
		Return(models.CaseUpdate{Token: "token-1", Event: models.CaseEventRevokeCaseAccess, Record: record}, nil)
	suite.caseStore.On("SubmitEvent", suite.ctx, suite.creds, "tribunal-case", "12345678",
		mock.MatchedBy(func(update models.CaseUpdate) bool {
			return !update.Record.Data.Respondents[0].IdamID.Valid
		})).
		Return(record, nil)
	suite.accessControl.On("RemoveCaseUserRoles", suite.ctx, suite.creds, suite.expectedBindings()).
		Return(nil)

	request := suite.assignmentRequest()
	request.Type = models.ModificationRevoke
	err := suite.makeUsecase().ModifyUserCaseRoles(suite.ctx, suite.creds, request)

	suite.NoError(err)
	suite.caseStore.AssertExpectations(suite.T())
	suite.accessControl.AssertExpectations(suite.T())
}

func (suite *RoleAssignmentTestSuite) TestValidation() {
	usecase := suite.makeUsecase()

	err := usecase.ModifyUserCaseRoles(suite.ctx, suite.creds, models.CaseRoleModificationRequest{
		Type: "Transfer",
		Modifications: []models.CaseRoleModification{{
			CaseID: "12345678", CaseTypeID: "tribunal-case", Role: models.CaseRoleDefendant,
		}},
	})
	suite.ErrorIs(err, models.ErrInvalidModificationType)

	err = usecase.ModifyUserCaseRoles(suite.ctx, suite.creds, models.CaseRoleModificationRequest{
		Type: models.ModificationAssignment,
	})
	suite.ErrorIs(err, models.ErrEmptyModificationList)

	err = usecase.ModifyUserCaseRoles(suite.ctx, suite.creds, models.CaseRoleModificationRequest{
		Type:          models.ModificationAssignment,
		Modifications: []models.CaseRoleModification{{CaseID: "12345678"}},
	})
	suite.ErrorIs(err, models.ErrIncompleteModification)

	suite.accessControl.AssertNotCalled(suite.T(), "AddCaseUserRoles",
		mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RoleAssignmentTestSuite) TestValidation_DefaultsTheUserIDFromTheCaller() {
	request := models.CaseRoleModificationRequest{
		Type: models.ModificationAssignment,
		Modifications: []models.CaseRoleModification{{
			CaseID:     "12345678",
			CaseTypeID: "tribunal-case",
			Role:       models.CaseRoleDefendant,
		}},
	}

	suite.NoError(request.Validate(suite.creds))
	suite.Equal("user-1", request.Modifications[0].UserID)
}

func TestRoleAssignmentTestSuite(t *testing.T) {
	suite.Run(t, new(RoleAssignmentTestSuite))
}
