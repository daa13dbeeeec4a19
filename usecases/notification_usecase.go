package usecases

import (
	"context"

	"github.com/opentribunal/casework-backend/models"
)

// NotificationUsecase tracks what each party has seen of the tribunal's
// notifications.
type NotificationUsecase struct {
	mutator CaseMutator
}

// UpdateNotificationState records a view by the caller. One entry per
// distinct user: a repeat view updates the existing entry in place.
func (uc NotificationUsecase) UpdateNotificationState(ctx context.Context, creds models.Credentials,
	request models.ViewNotificationRequest,
) (models.CaseRecord, error) {
	return uc.mutator.Update(ctx, creds, request.CaseTypeID, request.CaseID,
		models.CaseEventUpdateNotification,
		func(data *models.CaseData) error {
			notification, err := data.FindNotification(request.NotificationID)
			if err != nil {
				return err
			}
			notification.ViewStatus.Record(creds.UserID, models.ViewStatusViewed)
			return nil
		})
}
