package ports

// CredentialChecker defines the interface for credential verification.
// The engine treats any non-true result as invalid and does not retry.
type CredentialChecker interface {
	// Check reports whether the username/password pair is valid.
	Check(username, password string) bool
}

// CredentialCheckerFunc adapts a plain function to the CredentialChecker
// interface.
type CredentialCheckerFunc func(username, password string) bool

// Check implements CredentialChecker.
func (f CredentialCheckerFunc) Check(username, password string) bool {
	return f(username, password)
}
