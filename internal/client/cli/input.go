package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"dating/internal/errors"

	"golang.org/x/term"
)

// readPassword is swapped in tests so they never touch a terminal.
var readPassword = term.ReadPassword

// prompt prints label and reads one trimmed line.
func prompt(reader *bufio.Reader, w io.Writer, label string) (string, error) {
	if _, err := fmt.Fprintf(w, "%s: ", label); err != nil {
		return "", err
	}

	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", errors.Wrapf(err, "read %s", label)
	}

	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echo when stdin is a terminal and falls back to a
// plain line otherwise, so passwords can be piped in scripts.
func promptPassword(reader *bufio.Reader, w io.Writer, stdin *os.File) (string, error) {
	if stdin == nil || !term.IsTerminal(int(stdin.Fd())) {
		return prompt(reader, w, "Password")
	}

	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return "", err
	}
	password, err := readPassword(int(stdin.Fd()))
	_, _ = fmt.Fprintln(w)
	if err != nil {
		return "", errors.Wrap(err, "read password")
	}

	return string(password), nil
}
