package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opentribunal/casework-backend/dto"
	"github.com/opentribunal/casework-backend/usecases"
)

func handleModifyCaseUserRoles(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		creds, found := credentials(c)
		if !found {
			return
		}

		var body dto.ModifyCaseUserRolesBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewRoleAssignmentUsecase()
		err := usecase.ModifyUserCaseRoles(c.Request.Context(), creds, dto.AdaptCaseRoleModificationRequest(body))
		if presentError(c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
