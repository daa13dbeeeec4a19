package models

// Attribute structs for the application and notification operations. The
// dto layer adapts the wire bodies into these.

type StoreApplicationRequest struct {
	CaseID             string
	CaseTypeID         string
	Type               ApplicationType
	Applicant          Party
	Text               string
	SupportingDocument *DocumentRef
}

type SubmitStoredApplicationRequest struct {
	CaseID        string
	CaseTypeID    string
	ApplicationID string
}

type RespondToApplicationRequest struct {
	CaseID             string
	CaseTypeID         string
	ApplicationID      string
	Party              Party
	Text               string
	SupportingDocument *DocumentRef
}

type StoreResponseRequest struct {
	CaseID             string
	CaseTypeID         string
	ApplicationID      string
	Party              Party
	Text               string
	SupportingDocument *DocumentRef
}

type SubmitStoredResponseRequest struct {
	CaseID        string
	CaseTypeID    string
	ApplicationID string
	ResponseID    string
}

type ViewApplicationRequest struct {
	CaseID        string
	CaseTypeID    string
	ApplicationID string
}

type ViewNotificationRequest struct {
	CaseID         string
	CaseTypeID     string
	NotificationID string
}

// EmailTemplates lists the provider template ids used by the application
// lifecycle acknowledgments.
type EmailTemplates struct {
	ApplicationStored    string
	ApplicationSubmitted string
	ApplicationResponded string
}
