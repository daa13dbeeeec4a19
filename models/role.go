package models

// CaseRole is a named access-control grant on a case.
type CaseRole string

const (
	CaseRoleCreator   CaseRole = "[CREATOR]"
	CaseRoleDefendant CaseRole = "[DEFENDANT]"
)

// CaseRoleBinding links a user id to a case id under a role, held by the
// external access control service. At most one binding exists per
// (case, user, role) triple.
type CaseRoleBinding struct {
	CaseID string
	UserID string
	Role   CaseRole
}

// ModificationType selects the verb of a role modification request.
type ModificationType string

const (
	ModificationAssignment ModificationType = "Assignment"
	ModificationRevoke     ModificationType = "Revoke"
)

// CaseRoleModification is one requested change: grant or revoke Role for
// UserID on the given case. RespondentName selects which respondent's
// linkage fields follow the role change; empty means the first respondent.
type CaseRoleModification struct {
	CaseID         string
	CaseTypeID     string
	UserID         string
	Role           CaseRole
	RespondentName string
}

func (m CaseRoleModification) Binding() CaseRoleBinding {
	return CaseRoleBinding{CaseID: m.CaseID, UserID: m.UserID, Role: m.Role}
}

type CaseRoleModificationRequest struct {
	Type          ModificationType
	Modifications []CaseRoleModification
}

// Validate enforces the request preconditions before any external call is
// made. Missing user ids are defaulted from the caller.
func (r *CaseRoleModificationRequest) Validate(caller Credentials) error {
	switch r.Type {
	case ModificationAssignment, ModificationRevoke:
	default:
		return ErrInvalidModificationType
	}
	if len(r.Modifications) == 0 {
		return ErrEmptyModificationList
	}
	for i := range r.Modifications {
		m := &r.Modifications[i]
		if m.UserID == "" {
			m.UserID = caller.UserID
		}
		if m.CaseID == "" || m.CaseTypeID == "" || m.Role == "" || m.UserID == "" {
			return ErrIncompleteModification
		}
	}
	return nil
}
