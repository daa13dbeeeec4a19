package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opentribunal/casework-backend/mocks"
	"github.com/opentribunal/casework-backend/models"
)

type CaseMutatorTestSuite struct {
	suite.Suite
	caseStore *mocks.CaseStoreRepository

	ctx   context.Context
	creds models.Credentials
}

func (suite *CaseMutatorTestSuite) SetupTest() {
	suite.caseStore = new(mocks.CaseStoreRepository)
	suite.ctx = context.Background()
	suite.creds = models.Credentials{UserID: "user-1", BearerToken: "bearer"}
}

func (suite *CaseMutatorTestSuite) makeMutator() CaseMutator {
	return NewCaseMutator(suite.caseStore)
}

func (suite *CaseMutatorTestSuite) update() models.CaseUpdate {
	return models.CaseUpdate{
		Token: "token-1",
		Event: models.CaseEventStoreApplication,
		Record: models.CaseRecord{
			ID:         "12345678",
			CaseTypeID: "tribunal-case",
		},
	}
}

func (suite *CaseMutatorTestSuite) TestUpdate_RoundTripsTheMutatedSnapshot() {
	update := suite.update()
	suite.caseStore.On("StartEvent", suite.ctx, suite.creds, "tribunal-case", "12345678",
		models.CaseEventStoreApplication).Return(update, nil)
	suite.caseStore.On("SubmitEvent", suite.ctx, suite.creds, "tribunal-case", "12345678",
		mock.MatchedBy(func(submitted models.CaseUpdate) bool {
			return submitted.Token == "token-1" && submitted.Record.Data.CaseReference == "mutated"
		})).Return(update.Record, nil)

	_, err := suite.makeMutator().Update(suite.ctx, suite.creds, "tribunal-case", "12345678",
		models.CaseEventStoreApplication,
		func(data *models.CaseData) error {
			data.CaseReference = "mutated"
			return nil
		})

	suite.NoError(err)
	suite.caseStore.AssertExpectations(suite.T())
}

func (suite *CaseMutatorTestSuite) TestUpdate_MutationErrorAbandonsTheToken() {
	boom := errors.New("boom")
	suite.caseStore.On("StartEvent", suite.ctx, suite.creds, "tribunal-case", "12345678",
		models.CaseEventStoreApplication).Return(suite.update(), nil)

	_, err := suite.makeMutator().Update(suite.ctx, suite.creds, "tribunal-case", "12345678",
		models.CaseEventStoreApplication,
		func(data *models.CaseData) error { return boom })

	suite.ErrorIs(err, boom)
	suite.caseStore.AssertNotCalled(suite.T(), "SubmitEvent",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CaseMutatorTestSuite) TestSubmitUpdate_RefusesAnEmptyToken() {
	update := suite.update()
	update.Token = ""

	_, err := suite.makeMutator().SubmitUpdate(suite.ctx, suite.creds, update)

	suite.ErrorIs(err, models.ErrMissingVersionToken)
	suite.caseStore.AssertNotCalled(suite.T(), "SubmitEvent",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CaseMutatorTestSuite) TestSubmitUpdate_SecondSubmitOfTheSameTokenConflicts() {
	update := suite.update()
	suite.caseStore.On("SubmitEvent", suite.ctx, suite.creds, "tribunal-case", "12345678", update).
		Return(update.Record, nil).Once()
	suite.caseStore.On("SubmitEvent", suite.ctx, suite.creds, "tribunal-case", "12345678", update).
		Return(models.CaseRecord{}, models.ErrStaleCaseVersion).Once()

	mutator := suite.makeMutator()

	_, err := mutator.SubmitUpdate(suite.ctx, suite.creds, update)
	suite.NoError(err)

	_, err = mutator.SubmitUpdate(suite.ctx, suite.creds, update)
	suite.ErrorIs(err, models.ConflictError)
	suite.caseStore.AssertExpectations(suite.T())
}

func TestCaseMutatorTestSuite(t *testing.T) {
	suite.Run(t, new(CaseMutatorTestSuite))
}
