package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opentribunal/casework-backend/dto"
	"github.com/opentribunal/casework-backend/models"
	"github.com/opentribunal/casework-backend/usecases"
)

func handleGetCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		creds, found := credentials(c)
		if !found {
			return
		}

		var input CaseInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		caseTypeID := c.Query("case_type_id")
		if caseTypeID == "" {
			c.Status(http.StatusBadRequest)
			return
		}

		mutator := uc.NewCaseMutator()
		record, err := mutator.GetUserCase(c.Request.Context(), creds, caseTypeID, input.CaseID)
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptCaseRecordDto(record))
	}
}

type SearchCasesBody struct {
	CaseTypeID     string     `json:"case_type_id" binding:"required"`
	CaseReferences []string   `json:"case_references"`
	ModifiedSince  *time.Time `json:"modified_since"`
}

func handleSearchCases(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		creds, found := credentials(c)
		if !found {
			return
		}

		var body SearchCasesBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		mutator := uc.NewCaseMutator()
		records, err := mutator.SearchCases(c.Request.Context(), creds, body.CaseTypeID,
			models.CaseSearchQuery{
				CaseReferences: body.CaseReferences,
				ModifiedSince:  body.ModifiedSince,
			})
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"cases": dto.AdaptCaseRecordListDto(records)})
	}
}
