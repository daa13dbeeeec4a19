package models

import (
	"github.com/guregu/null/v5"
)

// Respondent is one respondent party on a case. IdamID links it to a user
// account: an Assignment sets it, a Revoke clears it, and re-assigning the
// account it already carries is a no-op rather than a conflict.
type Respondent struct {
	ID           string                     `json:"id,omitempty"`
	Name         string                     `json:"respondentName,omitempty"`
	Email        string                     `json:"respondentEmail,omitempty"`
	IdamID       null.String                `json:"idamId,omitzero"`
	LinkStatuses map[LinkSection]LinkStatus `json:"linkStatuses,omitempty"`
}

// LinkAccount attaches a user account to the respondent and resets its hub
// sections to their defaults.
func (r *Respondent) LinkAccount(userID string) error {
	if r.IdamID.Valid {
		if r.IdamID.String == userID {
			return ErrAccountAlreadyLinked
		}
		return ErrAccountLinkedToAnotherUser
	}
	r.IdamID = null.StringFrom(userID)
	r.LinkStatuses = DefaultLinkStatuses()
	return nil
}

// UnlinkAccount clears the linkage. Clearing an already-clear respondent is
// harmless; revoke flows may be re-run after a partial failure.
func (r *Respondent) UnlinkAccount() {
	r.IdamID = null.String{}
	r.LinkStatuses = nil
}

// LinkSection names one section of the respondent's case hub.
type LinkSection string

const (
	LinkSectionPersonalDetails   LinkSection = "personalDetails"
	LinkSectionEmployersResponse LinkSection = "et3Response"
	LinkSectionHearingDetails    LinkSection = "hearingDetails"
	LinkSectionDocuments         LinkSection = "documents"
)

type LinkStatus string

const (
	LinkStatusNotStarted   LinkStatus = "notStartedYet"
	LinkStatusNotAvailable LinkStatus = "cannotStartYet"
	LinkStatusInProgress   LinkStatus = "inProgress"
	LinkStatusCompleted    LinkStatus = "completed"
)

func DefaultLinkStatuses() map[LinkSection]LinkStatus {
	return map[LinkSection]LinkStatus{
		LinkSectionPersonalDetails:   LinkStatusNotStarted,
		LinkSectionEmployersResponse: LinkStatusNotStarted,
		LinkSectionHearingDetails:    LinkStatusNotAvailable,
		LinkSectionDocuments:         LinkStatusNotAvailable,
	}
}
