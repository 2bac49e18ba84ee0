package helpers

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ResolveInput returns value when it was given on the command line,
// otherwise it prints prompt to out and reads a single line from in.
func ResolveInput(value, prompt string, in *bufio.Reader, out io.Writer) (string, error) {
	if value != "" {
		return value, nil
	}

	fmt.Fprintln(out, Colorize(prompt, Bold))

	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "reading input")
	}

	return strings.TrimSpace(line), nil
}
