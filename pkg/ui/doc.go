// Package ui renders command results for people and for programs.
//
// A Renderer is bound to one output and one Format. FormatTerminal uses the
// lipgloss styles from the styles subpackage, FormatText prints the same
// lines without styling, and FormatJSON prints one JSON document per call.
// FormatAuto is resolved once, when the renderer is created.
package ui
