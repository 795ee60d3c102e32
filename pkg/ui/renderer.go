package ui

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/filestate/pkg/errors"
	"github.com/arthur-debert/filestate/pkg/types"
	"github.com/arthur-debert/filestate/pkg/ui/styles"
	"github.com/charmbracelet/glamour"
)

// Renderer writes results to one output in one format
type Renderer struct {
	output io.Writer
	format Format
}

// NewRenderer creates a renderer. FormatAuto, or the zero Format, is resolved
// with DetectFormat when output is a file and falls back to FormatText
// otherwise.
func NewRenderer(format Format, output io.Writer) *Renderer {
	if format == FormatAuto || format == "" {
		format = FormatText
		if f, ok := output.(*os.File); ok {
			format = DetectFormat(f)
		}
	}
	return &Renderer{output: output, format: format}
}

// Format returns the resolved format.
func (r *Renderer) Format() Format {
	return r.format
}

type outcomeDoc struct {
	types.Outcome
	DryRun bool `json:"dry_run,omitempty"`
}

// RenderOutcome reports a reconcile outcome.
func (r *Renderer) RenderOutcome(outcome types.Outcome, dryRun bool) error {
	if r.format == FormatJSON {
		return r.encode(outcomeDoc{Outcome: outcome, DryRun: dryRun})
	}

	label, style := "ok", styles.Ok
	switch {
	case dryRun:
		label, style = "skipped (dry run)", styles.DryRun
	case outcome.Changed:
		label, style = "changed", styles.Changed
	}
	return r.line(label, style, outcome.Path)
}

type stateDoc struct {
	Path        string `json:"path"`
	State       string `json:"state"`
	WouldChange bool   `json:"would_change"`
}

// RenderState reports the result of an inspection.
func (r *Renderer) RenderState(path string, state types.FileState) error {
	if r.format == FormatJSON {
		return r.encode(stateDoc{Path: path, State: state.String(), WouldChange: state.NeedsWrite()})
	}

	style := styles.Ok
	if state.NeedsWrite() {
		style = styles.Changed
	}
	return r.line(state.String(), style, path)
}

type errorDoc struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Kind    string                 `json:"kind"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RenderError reports err. The content detail is never printed.
func (r *Renderer) RenderError(err error) error {
	code := errors.GetErrorCode(err)
	msg := err.Error()
	var fsErr *errors.FilestateError
	if stderrors.As(err, &fsErr) {
		msg = fsErr.Message
		if fsErr.Wrapped != nil {
			msg += ": " + fsErr.Wrapped.Error()
		}
	}

	if r.format == FormatJSON {
		return r.encode(errorDoc{
			Error:   msg,
			Code:    string(code),
			Kind:    string(errors.GetKind(err)),
			Details: printableDetails(errors.GetErrorDetails(err)),
		})
	}

	if r.format == FormatTerminal {
		_, werr := fmt.Fprintf(r.output, "%s %s %s\n",
			styles.Get(styles.Error).Render("error"),
			styles.Get(styles.Code).Render("["+string(code)+"]"),
			msg)
		return werr
	}
	_, werr := fmt.Fprintf(r.output, "error [%s] %s\n", code, msg)
	return werr
}

// RenderMarkdown prints markdown, rendered with glamour on a terminal and
// as-is otherwise.
func (r *Renderer) RenderMarkdown(md string) error {
	out := md
	if r.format == FormatTerminal {
		renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err == nil {
			if rendered, err := renderer.Render(md); err == nil {
				out = rendered
			}
		}
	}
	_, err := io.WriteString(r.output, out)
	return err
}

func (r *Renderer) line(label, style, path string) error {
	if r.format == FormatTerminal {
		_, err := fmt.Fprintf(r.output, "%s %s\n",
			styles.Get(style).Render(label),
			styles.Get(styles.Path).Render(path))
		return err
	}
	_, err := fmt.Fprintf(r.output, "%s: %s\n", label, path)
	return err
}

func (r *Renderer) encode(v interface{}) error {
	enc := json.NewEncoder(r.output)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func printableDetails(details map[string]interface{}) map[string]interface{} {
	if len(details) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(details))
	for k, v := range details {
		if k == "content" {
			continue
		}
		out[k] = v
	}
	return out
}
