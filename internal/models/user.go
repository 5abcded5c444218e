package models

import "database/sql/driver"

// UserProfile is the display profile owned by a single caller identity.
type UserProfile struct {
	Name string `json:"name" db:"name"`
}

// UserRole is the durable access level of an identity.
//
// The zero value is RoleGuest so an unassigned identity never gains rights by
// accident.
type UserRole int

const (
	RoleGuest UserRole = iota
	RoleUser
	RoleAdmin
)

var roleNames = []string{"guest", "user", "admin"}

func (r UserRole) String() string { return enumName(roleNames, r) }
func (r UserRole) Valid() bool    { return enumValid(roleNames, r) }

func ParseUserRole(s string) (UserRole, error) {
	return parseEnum[UserRole]("role", roleNames, s)
}

func (r UserRole) MarshalText() ([]byte, error) { return marshalEnum("role", roleNames, r) }

func (r *UserRole) UnmarshalText(b []byte) error {
	v, err := ParseUserRole(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r UserRole) Value() (driver.Value, error) { return valueEnum("role", roleNames, r) }
func (r *UserRole) Scan(src any) error          { return scanEnum("role", roleNames, r, src) }
