// Package credentials provides CredentialChecker implementations.
package credentials

import "crypto/subtle"

// StaticChecker implements ports.CredentialChecker against a fixed
// username→password map. Comparison is constant-time per candidate so a
// lookup cannot leak password prefixes through timing.
//
// The map is read-only after construction; concurrent Check calls are safe.
type StaticChecker struct {
	users map[string]string
}

// NewStaticChecker creates a checker over a copy of the given map.
func NewStaticChecker(users map[string]string) *StaticChecker {
	copied := make(map[string]string, len(users))
	for u, p := range users {
		copied[u] = p
	}
	return &StaticChecker{users: copied}
}

// Check implements ports.CredentialChecker.
func (c *StaticChecker) Check(username, password string) bool {
	expected, ok := c.users[username]
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(password)) == 1
}
