package setup

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-forms-auth/internal/service"
)

// Exit codes of the admin-setup tool.
const (
	ExitOK    = 0
	ExitError = 1
)

// Report prints the outcome of [Setup.Run] and returns the process exit code.
// User errors and cancellations print "CANCELED: msg"; everything else
// prints "ERROR: err".
func Report(out io.Writer, err error) int {
	if err == nil {
		fmt.Fprintln(out, successStyle.Render("Password successfully changed."))
		return ExitOK
	}

	var userErr *service.UserError
	switch {
	case errors.As(err, &userErr):
		fmt.Fprintln(out, canceledStyle.Render("CANCELED: "+userErr.Message))
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(out, canceledStyle.Render("CANCELED: "+errCanceled.Message))
	default:
		fmt.Fprintln(out, errorStyle.Render("ERROR: "+err.Error()))
	}
	return ExitError
}
