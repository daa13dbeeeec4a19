package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/opentribunal/casework-backend/models"
	"github.com/opentribunal/casework-backend/pure_utils"
	"github.com/opentribunal/casework-backend/usecases/saga"
)

type AccessControlRepository interface {
	AddCaseUserRoles(ctx context.Context, creds models.Credentials, bindings []models.CaseRoleBinding) error
	RemoveCaseUserRoles(ctx context.Context, creds models.Credentials, bindings []models.CaseRoleBinding) error
}

// RoleAssignmentUsecase keeps the access control service and the case
// store's respondent linkage consistent with each other. An assignment
// grants the role bindings first, then links the respondent to the user's
// account; if the linkage fails the grant is compensated away. A revoke
// clears the linkage first, then removes the bindings, so a half-revoked
// case never shows an assigned-but-roleless respondent.
type RoleAssignmentUsecase struct {
	mutator       CaseMutator
	accessControl AccessControlRepository
}

func (uc RoleAssignmentUsecase) ModifyUserCaseRoles(ctx context.Context, creds models.Credentials,
	request models.CaseRoleModificationRequest,
) error {
	if err := request.Validate(creds); err != nil {
		return err
	}

	switch request.Type {
	case models.ModificationAssignment:
		return uc.assign(ctx, creds, request.Modifications)
	case models.ModificationRevoke:
		return uc.revoke(ctx, creds, request.Modifications)
	default:
		return models.ErrInvalidModificationType
	}
}

func (uc RoleAssignmentUsecase) assign(ctx context.Context, creds models.Credentials,
	modifications []models.CaseRoleModification,
) error {
	// Every target case must have a respondent to link. Checked up front so
	// an unlinkable request fails before any external system is mutated.
	for _, modification := range modifications {
		record, err := uc.mutator.GetUserCase(ctx, creds, modification.CaseTypeID, modification.CaseID)
		if err != nil {
			return err
		}
		if len(record.Data.Respondents) == 0 {
			return models.ErrRespondentCollectionEmpty
		}
	}

	bindings := pure_utils.Map(modifications, models.CaseRoleModification.Binding)

	steps := []saga.Step{
		{
			Name: "grant case user roles",
			Run: func(ctx context.Context) error {
				return uc.accessControl.AddCaseUserRoles(ctx, creds, bindings)
			},
			Compensate: func(ctx context.Context) error {
				return uc.accessControl.RemoveCaseUserRoles(ctx, creds, bindings)
			},
		},
		{
			Name: "link respondent accounts",
			Run: func(ctx context.Context) error {
				for _, modification := range modifications {
					err := uc.linkRespondent(ctx, creds, modification)
					// A respondent already linked to the same account is a
					// replayed or concurrent assignment of the same user:
					// skip that item, the remaining ones still get linked.
					if errors.Is(err, models.ErrAccountAlreadyLinked) {
						continue
					}
					if err != nil {
						return err
					}
				}
				return nil
			},
		},
	}

	compensated, err := saga.Execute(ctx, steps)
	if err != nil && compensated {
		return errors.Join(models.ErrRoleAssignmentFailed, err)
	}
	return err
}

func (uc RoleAssignmentUsecase) revoke(ctx context.Context, creds models.Credentials,
	modifications []models.CaseRoleModification,
) error {
	for _, modification := range modifications {
		if err := uc.unlinkRespondent(ctx, creds, modification); err != nil {
			return err
		}
	}
	bindings := pure_utils.Map(modifications, models.CaseRoleModification.Binding)
	return uc.accessControl.RemoveCaseUserRoles(ctx, creds, bindings)
}

func (uc RoleAssignmentUsecase) linkRespondent(ctx context.Context, creds models.Credentials,
	modification models.CaseRoleModification,
) error {
	update, err := uc.mutator.StartUpdate(ctx, creds,
		modification.CaseTypeID, modification.CaseID, models.CaseEventAssignCaseAccess)
	if err != nil {
		return err
	}

	respondent, err := findRespondent(update.Record.Data.Respondents, modification.RespondentName)
	if err != nil {
		return err
	}
	if err := respondent.LinkAccount(modification.UserID); err != nil {
		return err
	}

	_, err = uc.mutator.SubmitUpdate(ctx, creds, update)
	return err
}

func (uc RoleAssignmentUsecase) unlinkRespondent(ctx context.Context, creds models.Credentials,
	modification models.CaseRoleModification,
) error {
	update, err := uc.mutator.StartUpdate(ctx, creds,
		modification.CaseTypeID, modification.CaseID, models.CaseEventRevokeCaseAccess)
	if err != nil {
		return err
	}

	unlinked := false
	respondents := update.Record.Data.Respondents
	for i := range respondents {
		if respondents[i].IdamID.Valid && respondents[i].IdamID.String == modification.UserID {
			respondents[i].UnlinkAccount()
			unlinked = true
		}
	}
	if !unlinked {
		// Nothing to clear; the token is abandoned unused.
		return nil
	}

	_, err = uc.mutator.SubmitUpdate(ctx, creds, update)
	return err
}

func findRespondent(respondents []models.Respondent, name string) (*models.Respondent, error) {
	if len(respondents) == 0 {
		return nil, models.ErrRespondentCollectionEmpty
	}
	if name == "" {
		return &respondents[0], nil
	}
	for i := range respondents {
		if respondents[i].Name == name {
			return &respondents[i], nil
		}
	}
	return nil, errors.Wrapf(models.NotFoundError, "no respondent named %q on the case", name)
}
