package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegistrationValid(t *testing.T) {
	err := ValidateRegistration(RegistrationRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret1",
	})
	assert.NoError(t, err)
}

func TestValidateRegistrationCollectsAllViolations(t *testing.T) {
	err := ValidateRegistration(RegistrationRequest{Name: "", Email: "", Password: "123"})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Violations, 3, "every violated rule is reported, not just the first")
	assert.Equal(t, "name is required", verr.Violations[0])
	assert.Equal(t, "email is required", verr.Violations[1])
	assert.Equal(t, "password must be at least 6 characters long", verr.Violations[2])
}

func TestValidateRegistrationSingleViolations(t *testing.T) {
	cases := []struct {
		name string
		req  RegistrationRequest
		want string
	}{
		{"missing name", RegistrationRequest{Email: "a@b.co", Password: "secret1"}, "name is required"},
		{"missing email", RegistrationRequest{Name: "Ada", Password: "secret1"}, "email is required"},
		{"malformed email", RegistrationRequest{Name: "Ada", Email: "not-an-email", Password: "secret1"}, "email must be a valid email"},
		{"short password", RegistrationRequest{Name: "Ada", Email: "a@b.co", Password: "12345"}, "password must be at least 6 characters long"},
		{"missing password", RegistrationRequest{Name: "Ada", Email: "a@b.co"}, "password is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var verr *ValidationError
			require.True(t, errors.As(ValidateRegistration(tc.req), &verr))
			require.Len(t, verr.Violations, 1)
			assert.Equal(t, tc.want, verr.Violations[0])
		})
	}
}

func TestValidateRegistrationExactSixCharacterPassword(t *testing.T) {
	err := ValidateRegistration(RegistrationRequest{Name: "Ada", Email: "a@b.co", Password: "123456"})
	assert.NoError(t, err)
}
