package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prevet-dev/prevet/application/profile"
	"github.com/prevet-dev/prevet/domain/entities"
	"github.com/prevet-dev/prevet/infrastructure/credentials"
	"github.com/prevet-dev/prevet/infrastructure/parser"
	"github.com/prevet-dev/prevet/infrastructure/prompter"
	prevetnet "github.com/prevet-dev/prevet/net"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the check groups of a validation profile",
		RunE:  runExecute,
	}

	flags := cmd.Flags()
	flags.String("profile", "", "profile file to run (required)")
	flags.String("format", "pretty", "output format (pretty|json)")
	flags.Bool("fail-fast", false, "abort on the first failing check")
	flags.Bool("ask-credentials", false, "prompt for credentials omitted from the profile")
	flags.StringArray("user", nil, "known credential pair as user:password (repeatable)")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func runExecute(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	profilePath, _ := flags.GetString("profile")
	format, _ := flags.GetString("format")
	failFast, _ := flags.GetBool("fail-fast")
	askCredentials, _ := flags.GetBool("ask-credentials")
	userPairs, _ := flags.GetStringArray("user")

	doc, err := profile.Load(profilePath, parser.NewYAMLProfileParser())
	if err != nil {
		return err
	}

	users, err := parseUserPairs(userPairs)
	if err != nil {
		return err
	}

	deps := profile.Dependencies{
		Prober:      prevetnet.NewTCPProber(),
		Credentials: credentials.NewStaticChecker(users),
	}
	if askCredentials {
		deps.Prompter = prompter.NewCLIPrompter(os.Stdin, cmd.ErrOrStderr())
	}

	groups, err := profile.Compile(doc, deps)
	if err != nil {
		return err
	}

	var reports []entities.Report
	if failFast {
		reports, err = profile.RunFailFast(groups)
		if err != nil {
			// Render what finished before the abort, then surface the
			// failing check.
			if renderErr := render(cmd.OutOrStdout(), format, reports); renderErr != nil {
				return renderErr
			}
			return err
		}
	} else {
		reports = profile.Run(groups)
	}

	if err := render(cmd.OutOrStdout(), format, reports); err != nil {
		return err
	}

	if failing := countFailing(reports); failing > 0 {
		return fmt.Errorf("%d of %d check groups failing", failing, len(reports))
	}
	return nil
}

func parseUserPairs(pairs []string) (map[string]string, error) {
	users := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, password, ok := strings.Cut(pair, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --user value %q, expected user:password", pair)
		}
		users[name] = password
	}
	return users, nil
}

func countFailing(reports []entities.Report) int {
	failing := 0
	for _, r := range reports {
		if r.Status.IsFailure() {
			failing++
		}
	}
	return failing
}

func render(w io.Writer, format string, reports []entities.Report) error {
	switch strings.ToLower(format) {
	case "json":
		return renderJSON(w, reports)
	case "pretty":
		renderPretty(w, reports)
		return nil
	default:
		return fmt.Errorf("unknown format %q, expected pretty or json", format)
	}
}

func renderJSON(w io.Writer, reports []entities.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func renderPretty(w io.Writer, reports []entities.Report) {
	for _, r := range reports {
		fmt.Fprintf(w, "%s: %s\n", r.Group, r.Status)
		for _, o := range r.Results {
			label := o.Label
			if label == "" {
				label = "(unnamed check)"
			}
			if o.Err != nil {
				fmt.Fprintf(w, "  [%s] %s: %s\n", o.Status, label, o.Err.Message)
			} else {
				fmt.Fprintf(w, "  [%s] %s\n", o.Status, label)
			}
		}
	}
}
