// Package prompter provides an interactive credential source for CLI runs.
package prompter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// CLIPrompter implements ports.CredentialPrompter for terminal sessions.
type CLIPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewCLIPrompter creates a new CLIPrompter.
func NewCLIPrompter(in io.Reader, out io.Writer) *CLIPrompter {
	return &CLIPrompter{in: in, out: out}
}

// IsInteractive checks if the input is a terminal.
func (p *CLIPrompter) IsInteractive() bool {
	if f, ok := p.in.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// PromptForCredentials asks for a username/password pair for the given
// realm (e.g. the device or group the credential check targets).
func (p *CLIPrompter) PromptForCredentials(realm string) (string, string, error) {
	scanner := bufio.NewScanner(p.in)

	_, _ = fmt.Fprintf(p.out, "Credentials for %s\n", realm)

	_, _ = fmt.Fprint(p.out, "Username: ")
	username, err := readLine(scanner)
	if err != nil {
		return "", "", err
	}

	_, _ = fmt.Fprint(p.out, "Password: ")
	password, err := readLine(scanner)
	if err != nil {
		return "", "", err
	}

	return username, password, nil
}

func readLine(scanner *bufio.Scanner) (string, error) {
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
