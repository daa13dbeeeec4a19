package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opentribunal/casework-backend/dto"
	"github.com/opentribunal/casework-backend/models"
	"github.com/opentribunal/casework-backend/usecases"
)

type CaseInput struct {
	CaseID string `uri:"case_id" binding:"required"`
}

type ApplicationInput struct {
	CaseID        string `uri:"case_id" binding:"required"`
	ApplicationID string `uri:"application_id" binding:"required,uuid"`
}

func handleStoreApplication(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		creds, found := credentials(c)
		if !found {
			return
		}

		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.StoreApplicationBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewApplicationUsecase()
		record, err := usecase.StoreApplication(c.Request.Context(), creds,
			dto.AdaptStoreApplicationRequest(caseInput.CaseID, body))
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptCaseRecordDto(record))
	}
}

func handleSubmitStoredApplication(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		creds, found := credentials(c)
		if !found {
			return
		}

		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.SubmitStoredApplicationBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewApplicationUsecase()
		record, err := usecase.SubmitStoredApplication(c.Request.Context(), creds,
			models.SubmitStoredApplicationRequest{
				CaseID:        caseInput.CaseID,
				CaseTypeID:    body.CaseTypeID,
				ApplicationID: body.ApplicationID,
			})
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptCaseRecordDto(record))
	}
}

func handleRespondToApplication(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		creds, found := credentials(c)
		if !found {
			return
		}

		var input ApplicationInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.RespondToApplicationBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewApplicationUsecase()
		record, err := usecase.RespondToApplication(c.Request.Context(), creds,
			dto.AdaptRespondToApplicationRequest(input.CaseID, input.ApplicationID, body))
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptCaseRecordDto(record))
	}
}

func handleStoreResponse(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		creds, found := credentials(c)
		if !found {
			return
		}

		var input ApplicationInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.StoreResponseBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewApplicationUsecase()
		record, err := usecase.StoreResponse(c.Request.Context(), creds,
			dto.AdaptStoreResponseRequest(input.CaseID, input.ApplicationID, body))
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptCaseRecordDto(record))
	}
}

func handleSubmitStoredResponse(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		creds, found := credentials(c)
		if !found {
			return
		}

		var input ApplicationInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.SubmitStoredResponseBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewApplicationUsecase()
		record, err := usecase.SubmitStoredResponse(c.Request.Context(), creds,
			models.SubmitStoredResponseRequest{
				CaseID:        input.CaseID,
				CaseTypeID:    body.CaseTypeID,
				ApplicationID: input.ApplicationID,
				ResponseID:    body.ResponseID,
			})
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptCaseRecordDto(record))
	}
}

func handleViewApplication(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		creds, found := credentials(c)
		if !found {
			return
		}

		var input ApplicationInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.ViewItemBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewApplicationUsecase()
		record, err := usecase.ViewApplication(c.Request.Context(), creds,
			models.ViewApplicationRequest{
				CaseID:        input.CaseID,
				CaseTypeID:    body.CaseTypeID,
				ApplicationID: input.ApplicationID,
			})
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptCaseRecordDto(record))
	}
}
