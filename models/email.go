package models

// EmailRequest is one templated email handed to the notification provider.
// Reference ties the dispatch back to the case and item that triggered it.
type EmailRequest struct {
	TemplateID string
	Recipient  string
	Parameters map[string]string
	Reference  string
}
