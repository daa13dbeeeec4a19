package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opentribunal/casework-backend/dto"
	"github.com/opentribunal/casework-backend/models"
	"github.com/opentribunal/casework-backend/usecases"
)

type NotificationInput struct {
	CaseID         string `uri:"case_id" binding:"required"`
	NotificationID string `uri:"notification_id" binding:"required,uuid"`
}

func handleViewNotification(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		creds, found := credentials(c)
		if !found {
			return
		}

		var input NotificationInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.ViewItemBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewNotificationUsecase()
		record, err := usecase.UpdateNotificationState(c.Request.Context(), creds,
			models.ViewNotificationRequest{
				CaseID:         input.CaseID,
				CaseTypeID:     body.CaseTypeID,
				NotificationID: input.NotificationID,
			})
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptCaseRecordDto(record))
	}
}
