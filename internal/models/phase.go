package models

import "database/sql/driver"

// Phase is a delivery stage inside a Release.
type Phase struct {
	// PhaseID is chosen by the caller and must be unique among phases.
	PhaseID   string `json:"phaseId" db:"phase_id"`
	PhaseName string `json:"phaseName" db:"phase_name"`
	PhaseGoal string `json:"phaseGoal" db:"phase_goal"`

	// TargetDate is free-form text, not a parsed date.
	TargetDate string      `json:"targetDate" db:"target_date"`
	Status     PhaseStatus `json:"status" db:"status"`

	// ReleaseID names the Release this phase belongs to.
	ReleaseID string `json:"releaseId" db:"release_id"`
}

// PhaseStatus is declared in lifecycle order; sorting by status relies on it.
// The zero value is unspecified and never valid.
type PhaseStatus int

const (
	PhaseStatusUnspecified PhaseStatus = iota
	PhasePlanned
	PhaseInProgress
	PhaseCompleted
)

var phaseStatusNames = []string{"", "planned", "inProgress", "completed"}

func (s PhaseStatus) String() string { return enumName(phaseStatusNames, s) }
func (s PhaseStatus) Valid() bool    { return enumValid(phaseStatusNames, s) }

func ParsePhaseStatus(v string) (PhaseStatus, error) {
	return parseEnum[PhaseStatus]("phase status", phaseStatusNames, v)
}

func (s PhaseStatus) MarshalText() ([]byte, error) {
	return marshalEnum("phase status", phaseStatusNames, s)
}

func (s *PhaseStatus) UnmarshalText(b []byte) error {
	v, err := ParsePhaseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s PhaseStatus) Value() (driver.Value, error) {
	return valueEnum("phase status", phaseStatusNames, s)
}
func (s *PhaseStatus) Scan(src any) error { return scanEnum("phase status", phaseStatusNames, s, src) }

// AllPhaseStatuses lists every phase status in lifecycle order.
func AllPhaseStatuses() []PhaseStatus {
	return []PhaseStatus{PhasePlanned, PhaseInProgress, PhaseCompleted}
}
