package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetSecret prints a prompt to w and reads a line from the user's terminal
// without echo. Used for the identity token so it never lands in scrollback.
func GetSecret(prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	raw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

// GetFloat reads a decimal number. An empty line returns ok=false, which
// callers use for optional coordinates.
func GetFloat(reader *bufio.Reader, prompt string, w io.Writer) (float64, bool, error) {
	text, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, false, err
	}
	if text == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false, fmt.Errorf("not a number: %q", text)
	}
	return v, true, nil
}

// GetDate reads a date in YYYY-MM-DD form. An empty line returns nil,
// leaving the optional field unset.
func GetDate(reader *bufio.Reader, prompt string, w io.Writer) (*time.Time, error) {
	text, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", text)
	if err != nil {
		return nil, fmt.Errorf("expected YYYY-MM-DD, got %q", text)
	}
	return &t, nil
}
