package models

import "database/sql/driver"

// Release is a named MVP milestone.
type Release struct {
	// ReleaseID is chosen by the caller and must be unique among releases.
	ReleaseID   string        `json:"releaseId" db:"release_id"`
	ReleaseName string        `json:"releaseName" db:"release_name"`
	ReleaseGoal string        `json:"releaseGoal" db:"release_goal"`
	TargetDate  string        `json:"targetDate" db:"target_date"`
	Status      ReleaseStatus `json:"status" db:"status"`
}

// ReleaseStatus is declared in lifecycle order. The zero value is
// unspecified and never valid.
type ReleaseStatus int

const (
	ReleaseStatusUnspecified ReleaseStatus = iota
	ReleasePlanned
	ReleaseInProgress
	ReleaseReleased
)

var releaseStatusNames = []string{"", "planned", "inProgress", "released"}

func (s ReleaseStatus) String() string { return enumName(releaseStatusNames, s) }
func (s ReleaseStatus) Valid() bool    { return enumValid(releaseStatusNames, s) }

func ParseReleaseStatus(v string) (ReleaseStatus, error) {
	return parseEnum[ReleaseStatus]("release status", releaseStatusNames, v)
}

func (s ReleaseStatus) MarshalText() ([]byte, error) {
	return marshalEnum("release status", releaseStatusNames, s)
}

func (s *ReleaseStatus) UnmarshalText(b []byte) error {
	v, err := ParseReleaseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s ReleaseStatus) Value() (driver.Value, error) {
	return valueEnum("release status", releaseStatusNames, s)
}
func (s *ReleaseStatus) Scan(src any) error {
	return scanEnum("release status", releaseStatusNames, s, src)
}

// AllReleaseStatuses lists every release status in lifecycle order.
func AllReleaseStatuses() []ReleaseStatus {
	return []ReleaseStatus{ReleasePlanned, ReleaseInProgress, ReleaseReleased}
}

// MVPRelease bundles every use case, release and phase read in one pass.
type MVPRelease struct {
	UseCases []UseCase `json:"useCases"`
	Releases []Release `json:"releases"`
	Phases   []Phase   `json:"phases"`
}
