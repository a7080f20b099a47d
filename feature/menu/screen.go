package menu

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// clearScreen clears the terminal when w is one; other writers are left untouched.
func clearScreen(w io.Writer) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(w)
		return
	}
	fmt.Fprint(w, "\033[H\033[2J")
}
