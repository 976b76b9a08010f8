// Package dose defines the medication domain types and the HTTP client
// for the reminder backend.
package dose

import "context"

// DueItem is one medication occurrence awaiting action. The same
// medication can appear several times a day; identity for list purposes
// is the (MedicationID, ScheduledAt) pair.
type DueItem struct {
	MedicationID string `json:"medication_id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	ScheduledAt  string `json:"scheduled_at"`
}

// Key returns the list identity of the item.
func (d DueItem) Key() string {
	return d.MedicationID + "@" + d.ScheduledAt
}

// Compliance day statuses as reported by the backend.
const (
	StatusTaken   = "taken"
	StatusMissed  = "missed"
	StatusPending = "pending"
)

// ComplianceDay is one calendar day's aggregate adherence.
type ComplianceDay struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// ActionRequest is the payload for a take or snooze mutation. Minutes is
// only sent for snooze.
type ActionRequest struct {
	UserID       string `json:"user_id"`
	MedicationID string `json:"medication_id"`
	ScheduledAt  string `json:"scheduled_at"`
	Minutes      int    `json:"minutes,omitempty"`
}

// Schedule describes when a medication is due. DaysOfWeek uses 0-based
// weekday indices in Monday-first order; Times holds HH:MM strings.
type Schedule struct {
	DaysOfWeek []int    `json:"days_of_week"`
	Times      []string `json:"times"`
}

// NewMedication is the authoring payload for creating a medication.
type NewMedication struct {
	UserID       string   `json:"user_id"`
	Name         string   `json:"name"`
	Dosage       string   `json:"dosage"`
	PillImageURL string   `json:"pill_image_url"`
	Schedule     Schedule `json:"schedule"`
}

// Service is the backend surface the controllers consume. *Client
// implements it; tests substitute a fake.
type Service interface {
	FetchDueToday(ctx context.Context, userID string) ([]DueItem, error)
	RecordTake(ctx context.Context, req ActionRequest) error
	RecordSnooze(ctx context.Context, req ActionRequest) error
	SubmitVoiceCommand(ctx context.Context, text, userID string) (string, error)
	FetchCompliance(ctx context.Context, userID string) ([]ComplianceDay, error)
	CreateMedication(ctx context.Context, med NewMedication) error
}
