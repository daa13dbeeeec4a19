// Package httpmodels holds the wire shapes of the external collaborators.
// The formats are owned by those services; we decode them into typed domain
// models exactly once, here at the boundary.
package httpmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/opentribunal/casework-backend/models"
)

type HTTPCaseDetails struct {
	ID           string          `json:"id"`
	CaseTypeID   string          `json:"case_type_id"`
	State        string          `json:"state"`
	Data         json.RawMessage `json:"case_data"`
	CreatedDate  time.Time       `json:"created_date"`
	LastModified time.Time       `json:"last_modified"`
}

func AdaptCaseRecord(details HTTPCaseDetails) (models.CaseRecord, error) {
	record := models.CaseRecord{
		ID:           details.ID,
		CaseTypeID:   details.CaseTypeID,
		State:        details.State,
		CreatedDate:  details.CreatedDate,
		LastModified: details.LastModified,
	}
	if len(details.Data) > 0 {
		if err := json.Unmarshal(details.Data, &record.Data); err != nil {
			return models.CaseRecord{}, errors.Wrapf(err, "invalid case data for case %s", details.ID)
		}
	}
	return record, nil
}

type HTTPStartEventResponse struct {
	Token       string          `json:"token"`
	CaseDetails HTTPCaseDetails `json:"case_details"`
}

type HTTPSubmitEventRequest struct {
	Event      HTTPEvent       `json:"event"`
	EventToken string          `json:"event_token"`
	Data       models.CaseData `json:"data"`
}

type HTTPEvent struct {
	ID string `json:"id"`
}

type HTTPSearchCasesRequest struct {
	CaseReferences []string   `json:"case_references,omitempty"`
	ModifiedSince  *time.Time `json:"modified_since,omitempty"`
}

type HTTPSearchCasesResponse struct {
	Cases []HTTPCaseDetails `json:"cases"`
	Total int               `json:"total"`
}
