package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prevet-dev/prevet/application/config"
	"github.com/prevet-dev/prevet/domain/entities"
	derrors "github.com/prevet-dev/prevet/domain/errors"
	"github.com/prevet-dev/prevet/domain/ports"
)

func testDeps() Dependencies {
	return Dependencies{
		Prober:      ports.ProberFunc(func(string, int) bool { return true }),
		Credentials: ports.CredentialCheckerFunc(func(u, p string) bool { return u == "admin" && p == "s3cret" }),
	}
}

func TestCompile_AllCheckTypes(t *testing.T) {
	doc := &Document{Groups: []GroupSpec{{
		Name: "everything",
		Checks: []config.Config{
			{"type": "nonempty", "name": "hostname", "param": "core-sw-01"},
			{"type": "address", "address": "10.0.0.1"},
			{"type": "reachable", "host": "10.0.0.1", "port": 22},
			{"type": "credential", "username": "admin", "password": "s3cret"},
		},
	}}}

	groups, err := Compile(doc, testDeps())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "everything", groups[0].Name)
	assert.Len(t, groups[0].Checks, 4)

	reports := Run(groups)
	require.Len(t, reports, 1)
	assert.Equal(t, entities.StatusSuccess, reports[0].Status)
}

func TestCompile_UnknownType(t *testing.T) {
	doc := &Document{Groups: []GroupSpec{{
		Name:   "bad",
		Checks: []config.Config{{"type": "ping"}},
	}}}

	_, err := Compile(doc, testDeps())
	require.Error(t, err)

	var cfgErr *derrors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), `group "bad" check 0`)
}

func TestCompile_ReachableRequiresProber(t *testing.T) {
	doc := &Document{Groups: []GroupSpec{{
		Name:   "net",
		Checks: []config.Config{{"type": "reachable", "host": "10.0.0.1"}},
	}}}

	_, err := Compile(doc, Dependencies{})
	assert.Error(t, err)
}

func TestCompile_ReachablePortRange(t *testing.T) {
	doc := &Document{Groups: []GroupSpec{{
		Name:   "net",
		Checks: []config.Config{{"type": "reachable", "host": "10.0.0.1", "port": 99999}},
	}}}

	_, err := Compile(doc, testDeps())
	require.Error(t, err)

	var cfgErr *derrors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestCompile_CredentialWithoutPairNeedsPrompter(t *testing.T) {
	doc := &Document{Groups: []GroupSpec{{
		Name:   "auth",
		Checks: []config.Config{{"type": "credential"}},
	}}}

	_, err := Compile(doc, testDeps())
	assert.Error(t, err)
}

type fakePrompter struct {
	username string
	password string
	realm    string
}

func (f *fakePrompter) IsInteractive() bool { return true }

func (f *fakePrompter) PromptForCredentials(realm string) (string, string, error) {
	f.realm = realm
	return f.username, f.password, nil
}

var _ ports.CredentialPrompter = (*fakePrompter)(nil)

func TestCompile_CredentialPromptsWhenOmitted(t *testing.T) {
	deps := testDeps()
	prompt := &fakePrompter{username: "admin", password: "s3cret"}
	deps.Prompter = prompt

	doc := &Document{Groups: []GroupSpec{{
		Name:   "auth",
		Checks: []config.Config{{"type": "credential", "realm": "core-switch"}},
	}}}

	groups, err := Compile(doc, deps)
	require.NoError(t, err)
	assert.Equal(t, "core-switch", prompt.realm)

	reports := Run(groups)
	require.Len(t, reports, 1)
	assert.Equal(t, entities.StatusSuccess, reports[0].Status)
}

func TestCompile_MessageOverride(t *testing.T) {
	doc := &Document{Groups: []GroupSpec{{
		Name: "custom",
		Checks: []config.Config{
			{"type": "address", "address": "a.a.a", "message": "management address is malformed"},
		},
	}}}

	groups, err := Compile(doc, testDeps())
	require.NoError(t, err)

	reports := Run(groups)
	require.Len(t, reports, 1)
	errs := reports[0].Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "management address is malformed", errs[0].Message)
}

func TestRun_CollectsFailuresInOrder(t *testing.T) {
	doc := &Document{Groups: []GroupSpec{{
		Name: "IP Validation",
		Checks: []config.Config{
			{"type": "address", "address": "a.a.a"},
			{"type": "address", "address": "10.0.0.1"},
			{"type": "address", "address": "b.b.b"},
		},
	}}}

	groups, err := Compile(doc, testDeps())
	require.NoError(t, err)

	reports := Run(groups)
	require.Len(t, reports, 1)
	report := reports[0]
	assert.Equal(t, entities.StatusFailure, report.Status)
	require.Len(t, report.Results, 3)

	errs := report.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "IP a.a.a is invalid.", errs[0].Message)
	assert.Equal(t, "IP b.b.b is invalid.", errs[1].Message)
}

func TestRunFailFast_StopsAtFirstFailure(t *testing.T) {
	probed := 0
	deps := testDeps()
	deps.Prober = ports.ProberFunc(func(string, int) bool {
		probed++
		return true
	})

	doc := &Document{Groups: []GroupSpec{
		{Name: "first", Checks: []config.Config{
			{"type": "address", "address": "a.a.a"},
			{"type": "reachable", "host": "10.0.0.1", "port": 22},
		}},
		{Name: "second", Checks: []config.Config{
			{"type": "reachable", "host": "10.0.0.2", "port": 22},
		}},
	}}

	groups, err := Compile(doc, deps)
	require.NoError(t, err)

	reports, err := RunFailFast(groups)
	require.Error(t, err)
	assert.Equal(t, "IP a.a.a is invalid.", err.Error())
	assert.Empty(t, reports)
	assert.Zero(t, probed, "checks after the failure must not run")
}

func TestRunFailFast_AllPassing(t *testing.T) {
	doc := &Document{Groups: []GroupSpec{{
		Name:   "ok",
		Checks: []config.Config{{"type": "address", "address": "10.0.0.1"}},
	}}}

	groups, err := Compile(doc, testDeps())
	require.NoError(t, err)

	reports, err := RunFailFast(groups)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, entities.StatusSuccess, reports[0].Status)
}
