package models

// AppConfig is the process-wide singleton that controls release mode.
type AppConfig struct {
	Version string `json:"version" db:"version"`

	// AdminPasscode unlocks the advisory admin session in the UI. It is not an
	// authorization credential; server-side writes are gated by UserRole.
	AdminPasscode string `json:"adminPasscode" db:"admin_passcode"`

	// IsReleased opens create and update operations to non-admin callers.
	IsReleased bool `json:"isReleased" db:"is_released"`
}
