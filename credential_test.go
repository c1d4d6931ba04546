package prevet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prevet-dev/prevet/domain/entities"
	"github.com/prevet-dev/prevet/domain/ports"
)

func staticChecker(valid bool) ports.CredentialChecker {
	return ports.CredentialCheckerFunc(func(string, string) bool { return valid })
}

func TestCredential_Valid(t *testing.T) {
	d, err := NewCredential(staticChecker(true), "admin", "s3cret").Validate(false)
	require.NoError(t, err)
	assert.False(t, d.HasError())
}

func TestCredential_Invalid(t *testing.T) {
	d, err := NewCredential(staticChecker(false), "admin", "wrong").Validate(false)
	require.NoError(t, err)
	require.True(t, d.HasError())
	assert.Equal(t, "Credentials for user admin are invalid.", d.Err().Message)
}

func TestCredential_CheckerReceivesPair(t *testing.T) {
	var gotUser, gotPass string
	checker := ports.CredentialCheckerFunc(func(username, password string) bool {
		gotUser, gotPass = username, password
		return true
	})

	_, err := NewCredential(checker, "admin", "s3cret").Validate(false)
	require.NoError(t, err)
	assert.Equal(t, "admin", gotUser)
	assert.Equal(t, "s3cret", gotPass)
}

func TestCredential_WithError(t *testing.T) {
	ve := entities.NewValidationError("device login rejected")

	d, err := NewCredential(staticChecker(false), "admin", "wrong").WithError(ve).Validate(false)
	require.NoError(t, err)
	assert.Same(t, ve, d.Err())
}

func TestCredential_FailFast(t *testing.T) {
	_, err := NewCredential(staticChecker(false), "admin", "wrong").Validate(true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin")
}
