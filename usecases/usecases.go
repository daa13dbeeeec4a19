package usecases

import (
	"github.com/opentribunal/casework-backend/models"
	"github.com/opentribunal/casework-backend/repositories"
)

type Usecases struct {
	Repositories   repositories.Repositories
	EmailTemplates models.EmailTemplates
}

func (u Usecases) NewCaseMutator() CaseMutator {
	return NewCaseMutator(u.Repositories.CaseStoreRepository)
}

func (u Usecases) NewRoleAssignmentUsecase() RoleAssignmentUsecase {
	return RoleAssignmentUsecase{
		mutator:       u.NewCaseMutator(),
		accessControl: u.Repositories.AccessControlRepository,
	}
}

func (u Usecases) NewApplicationUsecase() ApplicationUsecase {
	return ApplicationUsecase{
		mutator:   u.NewCaseMutator(),
		notify:    u.Repositories.NotifyRepository,
		docRender: u.Repositories.DocRenderRepository,
		clock:     u.Repositories.Clock,
		templates: u.EmailTemplates,
	}
}

func (u Usecases) NewNotificationUsecase() NotificationUsecase {
	return NotificationUsecase{
		mutator: u.NewCaseMutator(),
	}
}
