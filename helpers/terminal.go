package helpers

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	Bold   = color.Bold
	Dim    = color.Faint
	Red    = color.FgRed
	Yellow = color.FgYellow
	Cyan   = color.FgCyan
)

// Prompts, errors and progress all go to stderr, so that is the stream we check.
var colorEnabled = !color.NoColor && IsTerminal(os.Stderr)

func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func SupportsColor() bool {
	return colorEnabled
}

func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

func Colorize(text string, attrs ...color.Attribute) string {
	if !colorEnabled || len(attrs) == 0 {
		return text
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

// ErrorLine formats err the way the CLI reports fatal errors.
func ErrorLine(err error) string {
	return Colorize("error: ", Red, Bold) + err.Error()
}
