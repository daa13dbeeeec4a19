package models

import (
	"time"
)

// CaseRecord is one versioned record held by the external case store. The
// store owns the concurrency model: every mutation must quote a single-use
// version token obtained from StartEvent.
type CaseRecord struct {
	ID           string
	CaseTypeID   string
	State        string
	Data         CaseData
	CreatedDate  time.Time
	LastModified time.Time
}

// CaseData is the typed form of the store's raw field map. It is decoded
// exactly once, at the repository boundary, so handlers never re-parse
// stringly-typed fields.
type CaseData struct {
	CaseReference    string                   `json:"caseReference,omitempty"`
	ClaimantFullName string                   `json:"claimantFullName,omitempty"`
	ClaimantEmail    string                   `json:"claimantEmail,omitempty"`
	Respondents      []Respondent             `json:"respondentCollection,omitempty"`
	Applications     []GenericApplicationItem `json:"applicationCollection,omitempty"`
	Notifications    []SendNotificationItem   `json:"notificationCollection,omitempty"`
}

// FindApplication scans the application collection by id. The collections
// are small (bounded by what a single tribunal case accumulates), a linear
// scan is fine.
func (d *CaseData) FindApplication(applicationID string) (*GenericApplicationItem, error) {
	for i := range d.Applications {
		if d.Applications[i].ID == applicationID {
			return &d.Applications[i], nil
		}
	}
	return nil, ErrApplicationNotFound
}

func (d *CaseData) FindNotification(notificationID string) (*SendNotificationItem, error) {
	for i := range d.Notifications {
		if d.Notifications[i].ID == notificationID {
			return &d.Notifications[i], nil
		}
	}
	return nil, ErrNotificationNotFound
}

// CaseEventType names the mutation events the external case store accepts.
type CaseEventType string

const (
	CaseEventAssignCaseAccess   CaseEventType = "assignCaseAccess"
	CaseEventRevokeCaseAccess   CaseEventType = "revokeCaseAccess"
	CaseEventStoreApplication   CaseEventType = "storeApplication"
	CaseEventSubmitApplication  CaseEventType = "submitApplication"
	CaseEventRespondApplication CaseEventType = "respondToApplication"
	CaseEventViewApplication    CaseEventType = "viewApplication"
	CaseEventUpdateNotification CaseEventType = "updateNotificationState"
)

// CaseUpdate is one in-flight start/submit cycle: the token issued by
// StartEvent plus the snapshot being mutated in memory. The token is
// consumed by exactly one SubmitEvent.
type CaseUpdate struct {
	Token  string
	Event  CaseEventType
	Record CaseRecord
}

// CaseSearchQuery is a structured filter for the store's search endpoint.
type CaseSearchQuery struct {
	CaseReferences []string
	ModifiedSince  *time.Time
}

// DocumentRef points at a document held by the external document store.
type DocumentRef struct {
	URL       string `json:"url,omitempty"`
	BinaryURL string `json:"binaryUrl,omitempty"`
	Filename  string `json:"filename,omitempty"`
}
