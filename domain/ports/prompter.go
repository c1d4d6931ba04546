package ports

// CredentialPrompter defines the interface for interactively collecting
// credentials, used by the CLI when a profile omits them.
type CredentialPrompter interface {
	// IsInteractive reports whether prompting is possible (e.g. the input
	// is a terminal).
	IsInteractive() bool

	// PromptForCredentials asks for a username/password pair.
	PromptForCredentials(realm string) (username, password string, err error)
}
