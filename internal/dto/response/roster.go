package response

import (
	"venue-booking/internal/roster"
)

type RosterRecordResponse struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	City          string            `json:"city,omitempty"`
	Language      string            `json:"language,omitempty"`
	Genre         string            `json:"genre,omitempty"`
	PricePerEvent *int              `json:"price_per_event,omitempty"`
	PricePerHour  *int              `json:"price_per_hour,omitempty"`
	Details       map[string]string `json:"details,omitempty"`
}

func RosterRecordToResponse(record *roster.Record) RosterRecordResponse {
	return RosterRecordResponse{
		ID:            record.ID,
		Name:          record.Name,
		City:          record.City,
		Language:      record.Language,
		Genre:         record.Genre,
		PricePerEvent: record.PricePerEvent,
		PricePerHour:  record.PricePerHour,
		Details:       record.Fields,
	}
}

func RosterRecordsToResponse(records []*roster.Record) []RosterRecordResponse {
	result := make([]RosterRecordResponse, 0, len(records))
	for _, record := range records {
		result = append(result, RosterRecordToResponse(record))
	}
	return result
}
