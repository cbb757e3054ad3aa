package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Options
	}{
		{
			name: "no arguments",
			args: nil,
			want: Options{},
		},
		{
			name: "config path only",
			args: []string{"/etc/forms-auth/config.json"},
			want: Options{ConfigPath: "/etc/forms-auth/config.json"},
		},
		{
			name: "all options",
			args: []string{"config.json", "--password", "S3cret!", "--no-pause"},
			want: Options{ConfigPath: "config.json", Password: "S3cret!", NoPause: true},
		},
		{
			name: "flags before path",
			args: []string{"--no-pause", "--password=x", "config.json"},
			want: Options{ConfigPath: "config.json", Password: "x", NoPause: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	_, err := ParseArgs([]string{"a.json", "b.json"})
	assert.ErrorIs(t, err, errTooManyArguments)

	_, err = ParseArgs([]string{"--unknown"})
	assert.Error(t, err)
}
