package types

// DesiredState is the caller-declared target condition for one file.
// It is built once per invocation and passed by value.
type DesiredState struct {
	Path    string
	Content string
	DryRun  bool
}

// Outcome is the result of one reconciliation. Changed is true only when
// the file was actually written.
type Outcome struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Changed bool   `json:"changed"`
}

// FileState describes how the file on disk relates to the desired content.
type FileState string

const (
	// StateAbsent means nothing exists at the path yet
	StateAbsent FileState = "absent"
	// StateDrifted means the file exists with different content
	StateDrifted FileState = "drifted"
	// StateInSync means the file already holds exactly the desired content
	StateInSync FileState = "in-sync"
)

// NeedsWrite reports whether reaching the desired state requires a write.
func (s FileState) NeedsWrite() bool {
	return s == StateAbsent || s == StateDrifted
}

func (s FileState) String() string {
	return string(s)
}
