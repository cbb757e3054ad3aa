package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-forms-auth/internal/config"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestParseArgs_Defaults(t *testing.T) {
	opts, err := ParseArgs([]string{"version"}, envOf(nil))

	require.NoError(t, err)
	assert.Equal(t, defaultServerAddress, opts.Server.HTTPAddress)
	assert.Equal(t, config.DefaultBaseRoute, opts.Server.BaseRoute)
	assert.Equal(t, config.DefaultRequestTimeout, opts.Server.RequestTimeout)
	assert.Empty(t, opts.Token)
	assert.Equal(t, "version", opts.Command)
	assert.Empty(t, opts.Args)
}

func TestParseArgs_CommandFlagsAreNotGlobal(t *testing.T) {
	opts, err := ParseArgs([]string{
		"-s", "https://auth.example.com", "--timeout", "5s",
		"login", "alice", "--password", "p", "--remember",
	}, envOf(map[string]string{TokenEnv: "from-env"}))

	require.NoError(t, err)
	assert.Equal(t, "https://auth.example.com", opts.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, opts.Server.RequestTimeout)
	assert.Equal(t, "from-env", opts.Token)
	assert.Equal(t, "login", opts.Command)
	assert.Equal(t, []string{"alice", "--password", "p", "--remember"}, opts.Args)
}

func TestParseArgs_TokenFlagOverridesEnv(t *testing.T) {
	opts, err := ParseArgs([]string{"--token", "from-flag", "logout"}, envOf(map[string]string{TokenEnv: "from-env"}))

	require.NoError(t, err)
	assert.Equal(t, "from-flag", opts.Token)
}

func TestParseArgs_Errors(t *testing.T) {
	_, err := ParseArgs(nil, envOf(nil))
	assert.ErrorIs(t, err, errMissingCommand)

	_, err = ParseArgs([]string{"--no-such-flag", "version"}, envOf(nil))
	assert.Error(t, err)
}
