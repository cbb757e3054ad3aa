package setup

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Pause prints "Press any key to continue . . ." and waits for one key. On a
// terminal the key is read in raw mode so no Enter is needed.
func Pause(in io.Reader, out io.Writer) {
	fmt.Fprint(out, helpStyle.Render("Press any key to continue . . ."))
	defer fmt.Fprintln(out)

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		state, err := term.MakeRaw(int(f.Fd()))
		if err == nil {
			defer term.Restore(int(f.Fd()), state) //nolint:errcheck
		}
	}

	buf := make([]byte, 1)
	_, _ = in.Read(buf)
}
