package auth

import "crypto/subtle"

// PasscodeMatches compares a candidate with the configured admin passcode in
// constant time. An empty configured passcode never matches.
func PasscodeMatches(configured, candidate string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(candidate)) == 1
}
