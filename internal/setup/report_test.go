package setup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-forms-auth/internal/service"
)

func TestReport(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{
			name:     "success",
			err:      nil,
			wantCode: ExitOK,
			wantOut:  "Password successfully changed.",
		},
		{
			name:     "escape pressed",
			err:      errCanceled,
			wantCode: ExitError,
			wantOut:  "CANCELED: User pressed the escape key.",
		},
		{
			name:     "wrapped user error",
			err:      fmt.Errorf("set admin password: %w", service.NewUserError("Password must have at least 8 characters.")),
			wantCode: ExitError,
			wantOut:  "CANCELED: Password must have at least 8 characters.",
		},
		{
			name:     "interrupted",
			err:      context.Canceled,
			wantCode: ExitError,
			wantOut:  "CANCELED: User pressed the escape key.",
		},
		{
			name:     "framework error",
			err:      errors.New("dial tcp: connection refused"),
			wantCode: ExitError,
			wantOut:  "ERROR: dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			code := Report(out, tt.err)

			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}

func TestPause_ReadsOneByte(t *testing.T) {
	in := strings.NewReader("xy")
	out := &bytes.Buffer{}

	Pause(in, out)

	assert.Contains(t, out.String(), "Press any key to continue . . .")
	assert.Equal(t, 1, in.Len())
}
