package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/filestate/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how a Renderer presents results. Its value is the
// canonical name used in output.format and --format.
type Format string

const (
	FormatAuto     Format = "auto"
	FormatTerminal Format = "term"
	FormatText     Format = "text"
	FormatJSON     Format = "json"
)

// formatNames maps every accepted spelling to its Format. The empty string
// means the user did not ask for anything.
var formatNames = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

func (f Format) String() string {
	return string(f)
}

// ParseFormat accepts a canonical name or an alias, ignoring case.
func ParseFormat(name string) (Format, error) {
	if f, ok := formatNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", name).
		WithDetail("format", name)
}

// DetectFormat picks FormatTerminal for a color-capable terminal and
// FormatText for anything else. NO_COLOR always wins.
func DetectFormat(output *os.File) Format {
	fd := output.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return detect(os.Getenv("NO_COLOR") != "", tty, termenv.ColorProfile())
}

func detect(noColor, tty bool, profile termenv.Profile) Format {
	if noColor || !tty || profile == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
