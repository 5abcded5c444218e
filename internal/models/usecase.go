package models

import "database/sql/driver"

// UseCase is a single tracked piece of MVP scope.
type UseCase struct {
	// UcID is assigned by the store on create and never changes afterwards.
	UcID string `json:"ucId" db:"uc_id"`

	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Owner       string `json:"owner" db:"owner"`

	// Tags is free text. The UI treats it as a comma-separated list; the store
	// does not look inside it.
	Tags string `json:"tags" db:"tags"`

	// PhaseID must name an existing Phase when the use case is written.
	PhaseID string `json:"phaseId" db:"phase_id"`

	// MvpReleaseID must name an existing Release when the use case is written.
	MvpReleaseID string `json:"mvpReleaseId" db:"mvp_release_id"`

	Priority UseCasePriority `json:"priority" db:"priority"`
	Status   UseCaseStatus   `json:"status" db:"status"`
	Value    UseCaseValue    `json:"value" db:"value"`
	Effort   UseCaseEffort   `json:"effort" db:"effort"`

	// CreatedDate is set once, on create.
	CreatedDate int64 `json:"createdDate" db:"created_date"`

	// LastUpdated is refreshed on every create and update.
	LastUpdated int64 `json:"lastUpdated" db:"last_updated"`
}

// UseCasePriority ranks a use case, P0 being the most urgent. The zero value
// is unspecified and never valid.
type UseCasePriority int

const (
	PriorityUnspecified UseCasePriority = iota
	PriorityP0
	PriorityP1
	PriorityP2
	PriorityP3
)

var priorityNames = []string{"", "p0", "p1", "p2", "p3"}

func (p UseCasePriority) String() string { return enumName(priorityNames, p) }
func (p UseCasePriority) Valid() bool    { return enumValid(priorityNames, p) }

// ParseUseCasePriority converts a wire name such as "p1" into a priority.
func ParseUseCasePriority(s string) (UseCasePriority, error) {
	return parseEnum[UseCasePriority]("priority", priorityNames, s)
}

func (p UseCasePriority) MarshalText() ([]byte, error) {
	return marshalEnum("priority", priorityNames, p)
}

func (p *UseCasePriority) UnmarshalText(b []byte) error {
	v, err := ParseUseCasePriority(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p UseCasePriority) Value() (driver.Value, error) {
	return valueEnum("priority", priorityNames, p)
}
func (p *UseCasePriority) Scan(src any) error { return scanEnum("priority", priorityNames, p, src) }

// UseCaseStatus is the delivery state of a use case. The zero value is
// unspecified and never valid.
type UseCaseStatus int

const (
	UseCaseStatusUnspecified UseCaseStatus = iota
	UseCaseProposed
	UseCaseApproved
	UseCaseInBuild
	UseCaseTest
	UseCaseDone
	UseCaseDeferred
)

var useCaseStatusNames = []string{"", "proposed", "approved", "inBuild", "test", "done", "deferred"}

func (s UseCaseStatus) String() string { return enumName(useCaseStatusNames, s) }
func (s UseCaseStatus) Valid() bool    { return enumValid(useCaseStatusNames, s) }

// ParseUseCaseStatus converts a wire name such as "inBuild" into a status.
func ParseUseCaseStatus(v string) (UseCaseStatus, error) {
	return parseEnum[UseCaseStatus]("use case status", useCaseStatusNames, v)
}

func (s UseCaseStatus) MarshalText() ([]byte, error) {
	return marshalEnum("use case status", useCaseStatusNames, s)
}

func (s *UseCaseStatus) UnmarshalText(b []byte) error {
	v, err := ParseUseCaseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s UseCaseStatus) Value() (driver.Value, error) {
	return valueEnum("use case status", useCaseStatusNames, s)
}
func (s *UseCaseStatus) Scan(src any) error {
	return scanEnum("use case status", useCaseStatusNames, s, src)
}

// AllUseCaseStatuses lists every status in declaration order.
func AllUseCaseStatuses() []UseCaseStatus {
	return []UseCaseStatus{UseCaseProposed, UseCaseApproved, UseCaseInBuild, UseCaseTest, UseCaseDone, UseCaseDeferred}
}

// UseCaseValue is the expected business value.
type UseCaseValue int

const (
	ValueUnspecified UseCaseValue = iota
	ValueLow
	ValueMed
	ValueHigh
)

var valueNames = []string{"", "low", "med", "high"}

func (v UseCaseValue) String() string { return enumName(valueNames, v) }
func (v UseCaseValue) Valid() bool    { return enumValid(valueNames, v) }

func ParseUseCaseValue(s string) (UseCaseValue, error) {
	return parseEnum[UseCaseValue]("value", valueNames, s)
}

func (v UseCaseValue) MarshalText() ([]byte, error) { return marshalEnum("value", valueNames, v) }

func (v *UseCaseValue) UnmarshalText(b []byte) error {
	parsed, err := ParseUseCaseValue(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v UseCaseValue) Value() (driver.Value, error) { return valueEnum("value", valueNames, v) }
func (v *UseCaseValue) Scan(src any) error          { return scanEnum("value", valueNames, v, src) }

// UseCaseEffort is a t-shirt size estimate.
type UseCaseEffort int

const (
	EffortUnspecified UseCaseEffort = iota
	EffortS
	EffortM
	EffortL
)

var effortNames = []string{"", "s", "m", "l"}

func (e UseCaseEffort) String() string { return enumName(effortNames, e) }
func (e UseCaseEffort) Valid() bool    { return enumValid(effortNames, e) }

func ParseUseCaseEffort(s string) (UseCaseEffort, error) {
	return parseEnum[UseCaseEffort]("effort", effortNames, s)
}

func (e UseCaseEffort) MarshalText() ([]byte, error) { return marshalEnum("effort", effortNames, e) }

func (e *UseCaseEffort) UnmarshalText(b []byte) error {
	v, err := ParseUseCaseEffort(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func (e UseCaseEffort) Value() (driver.Value, error) { return valueEnum("effort", effortNames, e) }
func (e *UseCaseEffort) Scan(src any) error          { return scanEnum("effort", effortNames, e, src) }
