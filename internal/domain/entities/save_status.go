package entities

import "time"

// SaveState tracks the admin remote-commit lifecycle:
// idle -> saving -> success|error -> idle (on next edit or reopen).
type SaveState string

const (
	SaveStateIdle    SaveState = "idle"
	SaveStateSaving  SaveState = "saving"
	SaveStateSuccess SaveState = "success"
	SaveStateError   SaveState = "error"
)

type SaveStatus struct {
	State     SaveState `json:"state"`
	Message   string    `json:"message,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
