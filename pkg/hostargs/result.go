package hostargs

import (
	"encoding/json"
	stderrors "errors"
	"io"

	"github.com/arthur-debert/filestate/pkg/errors"
	"github.com/arthur-debert/filestate/pkg/types"
)

// Result is the JSON document returned to the host
type Result struct {
	Changed bool   `json:"changed"`
	Path    string `json:"path"`
	Content string `json:"content"`
	Failed  bool   `json:"failed,omitempty"`
	Msg     string `json:"msg,omitempty"`
}

// NewResult builds the success document for an outcome.
func NewResult(outcome types.Outcome) Result {
	return Result{Changed: outcome.Changed, Path: outcome.Path, Content: outcome.Content}
}

// NewFailure builds the failure document for err.
func NewFailure(err error, path, content string) Result {
	return Result{Path: path, Content: content, Failed: true, Msg: FailureMessage(err)}
}

// Exit writes the success document for outcome.
func Exit(w io.Writer, outcome types.Outcome) error {
	return write(w, NewResult(outcome))
}

// Fail writes the failure document for err.
func Fail(w io.Writer, err error, path, content string) error {
	return write(w, NewFailure(err, path, content))
}

// FailureMessage renders err for the msg field. IO errors keep the
// underlying error text after the "Failed to write to file" prefix the host
// output has always used.
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.IsIO(err) {
		return "Failed to write to file: " + plain(err)
	}
	return plain(err)
}

// plain strips the [CODE] prefix of structured errors.
func plain(err error) string {
	var fsErr *errors.FilestateError
	if !stderrors.As(err, &fsErr) {
		return err.Error()
	}
	if fsErr.Wrapped != nil {
		return fsErr.Message + ": " + plain(fsErr.Wrapped)
	}
	return fsErr.Message
}

func write(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to write module result")
	}
	return nil
}
