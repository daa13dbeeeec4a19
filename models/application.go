package models

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
)

// GenericApplicationItem is one application attached to a case: a request
// made by the claimant or a respondent, worked through the shared lifecycle
// below. Notifications reuse the same per-party view mechanics.
type GenericApplicationItem struct {
	ID        string            `json:"id"`
	Type      ApplicationType   `json:"type"`
	Applicant Party             `json:"applicant"`
	Text      string            `json:"details,omitempty"`
	Status    ApplicationStatus `json:"status"`

	Date    *time.Time `json:"date,omitempty"`
	DueDate *time.Time `json:"dueDate,omitempty"`

	SupportingDocument *DocumentRef `json:"supportingDocument,omitempty"`

	// IsClaimantResponseDue and IsRespondentResponseDue flag which party the
	// tribunal expects a response from. Cleared by the matching respond.
	IsClaimantResponseDue   bool `json:"isClaimantResponseDue,omitempty"`
	IsRespondentResponseDue bool `json:"isRespondentResponseDue,omitempty"`

	ResponsesCount  int            `json:"responsesCount"`
	Responses       []ResponseItem `json:"respondCollection,omitempty"`
	StoredResponses []ResponseItem `json:"respondStoredCollection,omitempty"`

	ViewStatus PartyViewSet `json:"perUserStatus,omitzero"`
}

// Transition moves the application to newStatus. Moves outside the
// lifecycle table are refused as conflicts and leave the item untouched.
func (a *GenericApplicationItem) Transition(newStatus ApplicationStatus) error {
	if !a.Status.CanTransition(newStatus) {
		return errors.Wrapf(ConflictError, "application cannot move from %s to %s", a.Status, newStatus)
	}
	a.Status = newStatus
	return nil
}

// FindStoredResponse scans the stored response drafts by id.
func (a *GenericApplicationItem) FindStoredResponse(responseID string) (int, error) {
	for i := range a.StoredResponses {
		if a.StoredResponses[i].ID == responseID {
			return i, nil
		}
	}
	return 0, ErrStoredResponseNotFound
}

// ResponseItem is one response on an application: who said what, when, plus
// an optional supporting document and the rendered copy of the response
// when document generation succeeded.
type ResponseItem struct {
	ID                 string       `json:"id"`
	Author             Party        `json:"from"`
	Date               time.Time    `json:"date"`
	Text               string       `json:"response,omitempty"`
	SupportingDocument *DocumentRef `json:"supportingDocument,omitempty"`
	ResponseDocument   *DocumentRef `json:"responseDocument,omitempty"`
}

type Party string

const (
	PartyClaimant   Party = "claimant"
	PartyRespondent Party = "respondent"
	PartyTribunal   Party = "tribunal"
)

func (p Party) Valid() bool {
	return p == PartyClaimant || p == PartyRespondent || p == PartyTribunal
}

type ApplicationType string

const (
	ApplicationTypeWithdraw        ApplicationType = "withdraw"
	ApplicationTypeChangeDetails   ApplicationType = "change-details"
	ApplicationTypePostponeHearing ApplicationType = "postpone-hearing"
	ApplicationTypeAmendClaim      ApplicationType = "amend-claim"
	ApplicationTypeVaryRevokeOrder ApplicationType = "vary-revoke-order"
	ApplicationTypeContactTribunal ApplicationType = "contact-tribunal"
)

// SubmittedStatus is the status a stored application takes on submission.
// Requests decided by the tribunal alone open straight away; anything the
// other party must see first goes to in-progress.
func (t ApplicationType) SubmittedStatus() ApplicationStatus {
	switch t {
	case ApplicationTypeWithdraw, ApplicationTypeContactTribunal:
		return AppStatusInProgress
	default:
		return AppStatusOpen
	}
}

// ApplicationStatus is the closed lifecycle vocabulary shared by
// applications, notifications and stored responses.
type ApplicationStatus string

const (
	AppStatusStored             ApplicationStatus = "stored"
	AppStatusOpen               ApplicationStatus = "open"
	AppStatusInProgress         ApplicationStatus = "inProgress"
	AppStatusWaitingForTribunal ApplicationStatus = "waitingForTheTribunal"
	AppStatusViewed             ApplicationStatus = "viewed"
	AppStatusDecided            ApplicationStatus = "decided"
)

func (s ApplicationStatus) CanTransition(newStatus ApplicationStatus) bool {
	if s == newStatus {
		return true
	}

	switch s {
	case AppStatusStored:
		// A stored application may be submitted, or answered directly when
		// the tribunal already expects a response on it.
		return slices.Contains([]ApplicationStatus{AppStatusOpen, AppStatusInProgress, AppStatusWaitingForTribunal}, newStatus)
	case AppStatusOpen, AppStatusInProgress:
		return slices.Contains([]ApplicationStatus{AppStatusWaitingForTribunal, AppStatusViewed, AppStatusDecided}, newStatus)
	case AppStatusWaitingForTribunal:
		return slices.Contains([]ApplicationStatus{AppStatusViewed, AppStatusDecided}, newStatus)
	case AppStatusViewed:
		return newStatus == AppStatusDecided
	default:
		return false
	}
}

// ViewStatus is the per-party viewing state, tracked independently of the
// top-level application status.
type ViewStatus string

const (
	ViewStatusNotViewed ViewStatus = "notViewedYet"
	ViewStatusViewed    ViewStatus = "viewed"
)

// PartyViewStatus is the persisted shape of one per-user entry.
type PartyViewStatus struct {
	UserID string     `json:"userId"`
	Status ViewStatus `json:"status"`
}

// PartyViewSet tracks viewing state per user id. Internally it is keyed by
// user id so a repeat view updates in place; it serializes as an ordered
// list (first-view order) at the persistence boundary. Cardinality equals
// the number of distinct viewers, never more.
type PartyViewSet struct {
	order    []string
	statuses map[string]ViewStatus
}

func (s *PartyViewSet) Record(userID string, status ViewStatus) {
	if s.statuses == nil {
		s.statuses = make(map[string]ViewStatus)
	}
	if _, seen := s.statuses[userID]; !seen {
		s.order = append(s.order, userID)
	}
	s.statuses[userID] = status
}

func (s PartyViewSet) StatusOf(userID string) (ViewStatus, bool) {
	status, ok := s.statuses[userID]
	return status, ok
}

func (s PartyViewSet) Len() int {
	return len(s.order)
}

func (s PartyViewSet) Entries() []PartyViewStatus {
	entries := make([]PartyViewStatus, len(s.order))
	for i, userID := range s.order {
		entries[i] = PartyViewStatus{UserID: userID, Status: s.statuses[userID]}
	}
	return entries
}

func (s PartyViewSet) IsZero() bool {
	return len(s.order) == 0
}

func (s PartyViewSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Entries())
}

func (s *PartyViewSet) UnmarshalJSON(data []byte) error {
	var entries []PartyViewStatus
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*s = PartyViewSet{}
	for _, entry := range entries {
		s.Record(entry.UserID, entry.Status)
	}
	return nil
}
