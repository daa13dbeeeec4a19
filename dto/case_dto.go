package dto

import (
	"time"

	"github.com/opentribunal/casework-backend/models"
	"github.com/opentribunal/casework-backend/pure_utils"
)

// APICaseRecord is the case snapshot returned by every mutating endpoint.
type APICaseRecord struct {
	ID           string          `json:"id"`
	CaseTypeID   string          `json:"case_type_id"`
	State        string          `json:"state"`
	Data         models.CaseData `json:"case_data"`
	CreatedDate  time.Time       `json:"created_date"`
	LastModified time.Time       `json:"last_modified"`
}

func AdaptCaseRecordDto(record models.CaseRecord) APICaseRecord {
	return APICaseRecord{
		ID:           record.ID,
		CaseTypeID:   record.CaseTypeID,
		State:        record.State,
		Data:         record.Data,
		CreatedDate:  record.CreatedDate,
		LastModified: record.LastModified,
	}
}

func AdaptCaseRecordListDto(records []models.CaseRecord) []APICaseRecord {
	return pure_utils.Map(records, AdaptCaseRecordDto)
}
