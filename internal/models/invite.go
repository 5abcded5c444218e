package models

// InviteCode is a single-use code that lets its holder submit one RSVP.
type InviteCode struct {
	Code    string `json:"code" db:"code"`
	Created int64  `json:"created" db:"created"`

	// Used flips to true on the first successful RSVP with this code.
	Used bool `json:"used" db:"used"`
}

// RSVP is an attendance answer. RSVPs are append-only and have no identifier.
type RSVP struct {
	Name       string `json:"name" db:"name"`
	Attending  bool   `json:"attending" db:"attending"`
	InviteCode string `json:"inviteCode" db:"invite_code"`
	Timestamp  int64  `json:"timestamp" db:"timestamp"`
}
