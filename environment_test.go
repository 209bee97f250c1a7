package esccweb_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	esccweb "github.com/east-sussex-county-council/Escc.Data.Web"
)

func TestEnvironmentValid(t *testing.T) {
	tcs := []struct {
		env      esccweb.Environment
		expected error
	}{
		{esccweb.Development, nil},
		{esccweb.Production, nil},
		{esccweb.Staging, nil},
		{esccweb.Testing, nil},
		{esccweb.Environment("LOCAL"), esccweb.ErrNotValid},
		{esccweb.Environment(""), esccweb.ErrNotValid},
	}

	for _, tc := range tcs {
		t.Run(tc.env.String(), func(t *testing.T) {
			require.ErrorIs(t, tc.env.Valid(), tc.expected)
		})
	}
}

func TestEnvVarOrEnv(t *testing.T) {
	t.Run("Unset", func(t *testing.T) {
		require.Equal(t, esccweb.Production, esccweb.EnvVarOrEnv("ESCC_TEST_ENV", esccweb.Production))
	})

	t.Run("Set", func(t *testing.T) {
		t.Setenv("ESCC_TEST_ENV", "staging")
		require.Equal(t, esccweb.Staging, esccweb.EnvVarOrEnv("ESCC_TEST_ENV", esccweb.Production))
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Setenv("ESCC_TEST_ENV", "somewhere")
		require.Equal(t, esccweb.Production, esccweb.EnvVarOrEnv("ESCC_TEST_ENV", esccweb.Production))
	})
}

func TestEnvVarOrDuration(t *testing.T) {
	t.Run("Unset", func(t *testing.T) {
		require.Equal(t, time.Minute, esccweb.EnvVarOrDuration("ESCC_TEST_DUR", time.Minute))
	})

	t.Run("Set", func(t *testing.T) {
		t.Setenv("ESCC_TEST_DUR", "15s")
		require.Equal(t, 15*time.Second, esccweb.EnvVarOrDuration("ESCC_TEST_DUR", time.Minute))
	})
}

func TestEnvVarOrString(t *testing.T) {
	t.Run("Unset", func(t *testing.T) {
		require.Equal(t, "fallback", esccweb.EnvVarOrString("ESCC_TEST_STR", "fallback"))
	})

	t.Run("Set", func(t *testing.T) {
		t.Setenv("ESCC_TEST_STR", "value")
		require.Equal(t, "value", esccweb.EnvVarOrString("ESCC_TEST_STR", "fallback"))
	})
}

func TestEnvVarOrURL(t *testing.T) {
	t.Run("Unset", func(t *testing.T) {
		u := esccweb.EnvVarOrURL("ESCC_TEST_URL", "https://example.com/")
		require.Equal(t, "https://example.com/", u.String())
	})

	t.Run("Set", func(t *testing.T) {
		t.Setenv("ESCC_TEST_URL", "https://www.eastsussex.gov.uk/")
		u := esccweb.EnvVarOrURL("ESCC_TEST_URL", "https://example.com/")
		require.Equal(t, "https://www.eastsussex.gov.uk/", u.String())
	})

	t.Run("Bad-Default", func(t *testing.T) {
		require.Nil(t, esccweb.EnvVarOrURL("ESCC_TEST_URL_UNSET", "not a url"))
	})
}
