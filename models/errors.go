package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("conflict")
)

// Case store related errors
var (
	ErrCaseNotFound = errors.Wrap(NotFoundError, "case not found")

	// ErrStaleCaseVersion is returned when the external case store rejects
	// a submit because the version token was already consumed or superseded.
	// The caller must restart the whole start/submit cycle; the token is
	// single-use and a submit is never retried with the same one.
	ErrStaleCaseVersion = errors.Wrap(ConflictError, "case version token is stale or already consumed")

	ErrMissingVersionToken = errors.Wrap(BadParameterError, "case update carries no version token")
)

// Case role modification errors
var (
	ErrEmptyModificationList   = errors.Wrap(BadParameterError, "case role modification list is empty")
	ErrIncompleteModification  = errors.Wrap(BadParameterError, "case role modification item is missing required fields")
	ErrInvalidModificationType = errors.Wrap(BadParameterError, "unknown case role modification type")

	ErrRespondentCollectionEmpty = errors.Wrap(ConflictError, "case has no respondents to link")

	// ErrAccountAlreadyLinked: the respondent already carries the caller's
	// account id. Tolerated by the assignment flow, a re-assignment of the
	// same user is a no-op.
	ErrAccountAlreadyLinked = errors.Wrap(ConflictError, "respondent is already linked to this account")

	ErrAccountLinkedToAnotherUser = errors.Wrap(ConflictError, "respondent is linked to another account")

	// ErrRoleAssignmentFailed marks assignment failures that were rolled
	// back. The original cause is always joined to it.
	ErrRoleAssignmentFailed = errors.New("case role assignment failed")
)

// Application and notification lifecycle errors
var (
	ErrApplicationNotFound    = errors.Wrap(NotFoundError, "application not found")
	ErrNotificationNotFound   = errors.Wrap(NotFoundError, "notification not found")
	ErrStoredResponseNotFound = errors.Wrap(NotFoundError, "stored response not found")

	ErrApplicationNotStored = errors.Wrap(ConflictError, "application is not in the stored state")
	ErrUnexpectedResponder  = errors.Wrap(ConflictError, "no response is expected from this party")
)

// Notification dispatch failures surface to the caller; response document
// rendering failures do not (see RespondToApplication). The asymmetry is
// inherited behaviour pending product confirmation.
var ErrNotificationDispatchFailed = errors.New("email dispatch failed")
